package domain

import "time"

type Cart struct {
	ID        string     `bson:"_id,omitempty" json:"-"`
	SessionID string     `bson:"session_id" json:"session_id"`
	Items     []CartLine `bson:"items" json:"items"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// CartLine is one pending purchase line. Name and Price are cached from the
// product at add time so checkout can fall back on them when the live product
// lookup fails later.
type CartLine struct {
	ProductID int64     `bson:"product_id" json:"product_id"`
	Quantity  int       `bson:"quantity" json:"quantity"`
	AddedAt   time.Time `bson:"added_at" json:"added_at"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Price     float64   `bson:"price,omitempty" json:"price,omitempty"`
}

// CartTotals is always derived from live product data, never stored.
type CartTotals struct {
	Subtotal      float64 `json:"subtotal"`
	TotalItems    int     `json:"total_items"`
	TotalDiscount float64 `json:"total_discount"`
	GrandTotal    float64 `json:"grand_total"`
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// Line returns the line holding productID, or nil.
func (c *Cart) Line(productID int64) *CartLine {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}
