package checkout

import (
	"context"
	"errors"
	"log"

	"github.com/fitrinurazis/batik-storefront/internal/backend"
	"github.com/fitrinurazis/batik-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

var ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

type CartService interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type ProductResolver interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, req backend.CreateOrderRequest) (*domain.Order, error)
}

type CurrentOrderStore interface {
	Set(ctx context.Context, sessionID string, order *domain.Order) error
}

// Service converts a cart snapshot plus a validated form into an upstream
// order. On success the cart is destroyed and the order becomes the session's
// current order; on failure the cart is left untouched for a retry.
type Service struct {
	carts    CartService
	products ProductResolver
	orders   OrderCreator
	current  CurrentOrderStore
}

func NewService(carts CartService, products ProductResolver, orders OrderCreator, current CurrentOrderStore) *Service {
	return &Service{
		carts:    carts,
		products: products,
		orders:   orders,
		current:  current,
	}
}

// resolvedLine is a cart line merged with live product data. Fallback lines
// carry whatever name/price was cached at add time.
type resolvedLine struct {
	domain.CartLine
	unitPrice    decimal.Decimal
	resolvedName string
}

func (s *Service) Submit(ctx context.Context, sessionID string, form Form) (*domain.Order, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	if err := form.Validate(); err != nil {
		return nil, err
	}

	lines := s.resolveLines(ctx, cart.Items)

	subtotal := decimal.Zero
	items := make([]backend.CreateOrderItem, 0, len(lines))
	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		subtotal = subtotal.Add(line.unitPrice.Mul(qty))
		items = append(items, backend.CreateOrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.unitPrice.InexactFloat64(),
		})
	}

	// Free shipping: the total is the subtotal.
	total := subtotal.InexactFloat64()

	req := backend.CreateOrderRequest{
		OrderData: backend.OrderData{
			CustomerName:    form.FullName,
			Email:           form.Email,
			Phone:           NormalizePhone(form.Phone),
			Address:         form.Address,
			Province:        form.Province,
			City:            form.City,
			PostalCode:      form.PostalCode,
			Subtotal:        total,
			ShippingCost:    0,
			Total:           total,
			AgreeTerms:      form.AgreeTerms,
			AgreeNewsletter: form.AgreeNewsletter,
		},
		Items: items,
	}

	order, err := s.orders.CreateOrder(ctx, req)
	if err != nil {
		// Cart stays intact so the customer can retry.
		return nil, err
	}

	if errClear := s.carts.Clear(ctx, sessionID); errClear != nil {
		log.Printf("failed to clear cart after checkout: %v", errClear)
	}
	if errSet := s.current.Set(ctx, sessionID, order); errSet != nil {
		log.Printf("failed to store current order %d: %v", order.ID, errSet)
	}

	return order, nil
}

// resolveLines looks up each line's product one at a time; a failed lookup
// falls back to the line's cached name/price and never aborts the others.
func (s *Service) resolveLines(ctx context.Context, cartLines []domain.CartLine) []resolvedLine {
	lines := make([]resolvedLine, 0, len(cartLines))
	for _, cl := range cartLines {
		line := resolvedLine{
			CartLine:     cl,
			unitPrice:    decimal.NewFromFloat(cl.Price),
			resolvedName: cl.Name,
		}

		product, err := s.products.GetProduct(ctx, cl.ProductID)
		if err != nil || product == nil {
			log.Printf("product %d lookup failed, using cached line data: %v", cl.ProductID, err)
		} else {
			line.unitPrice = product.FinalPrice()
			line.resolvedName = product.Name
		}

		lines = append(lines, line)
	}
	return lines
}
