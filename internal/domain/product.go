package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Discount    float64   `json:"discount"` // percent, 0-100
	Stock       int       `json:"stock"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Images      []string  `json:"images,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// FinalPrice is the unit price after the percentage discount.
func (p Product) FinalPrice() decimal.Decimal {
	price := decimal.NewFromFloat(p.Price)
	if p.Discount <= 0 {
		return price
	}
	factor := decimal.NewFromInt(1).Sub(
		decimal.NewFromFloat(p.Discount).Div(decimal.NewFromInt(100)))
	return price.Mul(factor)
}

// UnitDiscount is the amount knocked off one unit by the discount.
func (p Product) UnitDiscount() decimal.Decimal {
	return decimal.NewFromFloat(p.Price).Sub(p.FinalPrice())
}

func (p Product) InStock(quantity int) bool {
	return quantity <= p.Stock
}
