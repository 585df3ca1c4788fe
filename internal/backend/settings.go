package backend

import (
	"context"
	"net/http"

	"github.com/fitrinurazis/batik-storefront/internal/domain"
)

func (c *Client) GetPublicSettings(ctx context.Context) (*domain.ShopSettings, error) {
	var resp struct {
		Settings domain.ShopSettings `json:"settings"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/settings/public", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Settings, nil
}

func (c *Client) GetPaymentOptions(ctx context.Context) (*domain.PaymentOptions, error) {
	var options domain.PaymentOptions
	if err := c.doJSON(ctx, http.MethodGet, "/api/settings/payment-methods", nil, &options); err != nil {
		return nil, err
	}
	return &options, nil
}
