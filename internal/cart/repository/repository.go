package repository

import (
	"context"
	"errors"

	"github.com/fitrinurazis/batik-storefront/internal/domain"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found in cart")
)

// CartRepository defines the interface for cart data operations.
// Consumers define this interface, not the MongoDB implementation.
type CartRepository interface {
	GetCart(ctx context.Context, sessionID string) (*domain.Cart, error)
	// AddItem merges on product_id: an existing line has its quantity
	// incremented by line.Quantity, a new line is appended.
	AddItem(ctx context.Context, sessionID string, line domain.CartLine) error
	UpdateItemQuantity(ctx context.Context, sessionID string, productID int64, quantity int) error
	RemoveItem(ctx context.Context, sessionID string, productID int64) error
	DeleteCart(ctx context.Context, sessionID string) error
}
