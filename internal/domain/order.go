package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStages is the fixed progression an order moves through. Cancelled sits
// outside the progression and is terminal.
var OrderStages = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// StageIndex returns the position of s in OrderStages, or -1 for cancelled
// and unknown statuses.
func (s OrderStatus) StageIndex() int {
	for i, stage := range OrderStages {
		if stage == s {
			return i
		}
	}
	return -1
}

func (s OrderStatus) Valid() bool {
	return s.StageIndex() >= 0 || s == OrderStatusCancelled
}

func (s OrderStatus) String() string {
	return string(s)
}

type OrderItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

// Order is owned by the upstream backend; the storefront only observes it
// once created.
type Order struct {
	ID           int64       `json:"id"`
	CustomerName string      `json:"customer_name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Province     string      `json:"province"`
	City         string      `json:"city"`
	PostalCode   string      `json:"postal_code"`
	Subtotal     float64     `json:"subtotal"`
	ShippingCost float64     `json:"shipping_cost"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	Items        []OrderItem `json:"items,omitempty"`
	Payment      *Payment    `json:"payment,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at,omitempty"`
}
