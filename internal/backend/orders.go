package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fitrinurazis/batik-storefront/internal/domain"
)

// CreateOrderRequest mirrors the backend's order-creation contract: customer
// and shipping fields plus precomputed totals, and items priced at the
// discounted unit price.
type CreateOrderRequest struct {
	OrderData OrderData         `json:"order_data"`
	Items     []CreateOrderItem `json:"items"`
}

type OrderData struct {
	CustomerName    string  `json:"customer_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	Province        string  `json:"province"`
	City            string  `json:"city"`
	PostalCode      string  `json:"postal_code"`
	Subtotal        float64 `json:"subtotal"`
	ShippingCost    float64 `json:"shipping_cost"`
	Total           float64 `json:"total"`
	AgreeTerms      bool    `json:"agree_terms"`
	AgreeNewsletter bool    `json:"agree_newsletter"`
}

type CreateOrderItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type orderEnvelope struct {
	Order domain.Order `json:"order"`
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	var resp orderEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// TrackOrder is the public order lookup used by the order-status and invoice
// views; it returns the order with its payment embedded.
func (c *Client) TrackOrder(ctx context.Context, id int64) (*domain.Order, error) {
	var resp orderEnvelope
	path := fmt.Sprintf("/api/orders/track/%d", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// GetOrder is the admin order lookup; requires a bearer token.
func (c *Client) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	var resp orderEnvelope
	path := fmt.Sprintf("/api/orders/%d", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	body := map[string]string{"status": status.String()}
	path := fmt.Sprintf("/api/orders/%d/status", id)
	return c.doJSON(ctx, http.MethodPut, path, body, nil)
}
