package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fitrinurazis/batik-storefront/internal/domain"
)

type listProductsResponse struct {
	Products []domain.Product `json:"products"`
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var resp listProductsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	path := fmt.Sprintf("/api/products/%d", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
