package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/fitrinurazis/batik-storefront/internal/backend"
	"github.com/fitrinurazis/batik-storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCarts struct {
	cart    *domain.Cart
	cleared bool
}

func (m *mockCarts) Get(context.Context, string) (*domain.Cart, error) {
	return m.cart, nil
}

func (m *mockCarts) Clear(context.Context, string) error {
	m.cleared = true
	return nil
}

type mockResolver struct {
	products map[int64]domain.Product
}

func (m *mockResolver) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, errors.New("product not found")
	}
	return &p, nil
}

type mockOrderCreator struct {
	calls   int
	lastReq backend.CreateOrderRequest
	order   *domain.Order
	err     error
}

func (m *mockOrderCreator) CreateOrder(_ context.Context, req backend.CreateOrderRequest) (*domain.Order, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.order, nil
}

type mockCurrentStore struct {
	order *domain.Order
}

func (m *mockCurrentStore) Set(_ context.Context, _ string, order *domain.Order) error {
	m.order = order
	return nil
}

func newTestCheckout(cart *domain.Cart, products map[int64]domain.Product, creator *mockOrderCreator) (*Service, *mockCarts, *mockCurrentStore) {
	carts := &mockCarts{cart: cart}
	current := &mockCurrentStore{}
	svc := NewService(carts, &mockResolver{products: products}, creator, current)
	return svc, carts, current
}

func twoShirtCart() *domain.Cart {
	return &domain.Cart{
		SessionID: "s",
		Items:     []domain.CartLine{{ProductID: 7, Quantity: 2, Name: "Batik Parang", Price: 100000}},
	}
}

func parangCatalog() map[int64]domain.Product {
	return map[int64]domain.Product{
		7: {ID: 7, Name: "Batik Parang", Price: 100000, Discount: 10, Stock: 5},
	}
}

func TestSubmit_EmptyCart(t *testing.T) {
	creator := &mockOrderCreator{}
	svc, _, _ := newTestCheckout(&domain.Cart{SessionID: "s"}, nil, creator)

	_, err := svc.Submit(context.Background(), "s", validForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, creator.calls)
}

func TestSubmit_ValidationBlocksBeforeNetwork(t *testing.T) {
	creator := &mockOrderCreator{}
	svc, carts, _ := newTestCheckout(twoShirtCart(), parangCatalog(), creator)

	form := validForm()
	form.Email = ""

	_, err := svc.Submit(context.Background(), "s", form)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)
	assert.Zero(t, creator.calls, "order endpoint must not be called on validation failure")
	assert.False(t, carts.cleared)
}

func TestSubmit_Success(t *testing.T) {
	creator := &mockOrderCreator{
		order: &domain.Order{ID: 42, Total: 180000, Status: domain.OrderStatusPending},
	}
	svc, carts, current := newTestCheckout(twoShirtCart(), parangCatalog(), creator)

	order, err := svc.Submit(context.Background(), "s", validForm())
	require.NoError(t, err)
	assert.Equal(t, int64(42), order.ID)

	// Cart destroyed, order staged for the payment flow.
	assert.True(t, carts.cleared)
	require.NotNil(t, current.order)
	assert.Equal(t, int64(42), current.order.ID)

	// Totals use the discounted unit price, shipping is free.
	req := creator.lastReq
	assert.Equal(t, 180000.0, req.OrderData.Subtotal)
	assert.Equal(t, 0.0, req.OrderData.ShippingCost)
	assert.Equal(t, 180000.0, req.OrderData.Total)
	require.Len(t, req.Items, 1)
	assert.Equal(t, 90000.0, req.Items[0].Price)
	assert.Equal(t, 2, req.Items[0].Quantity)
}

func TestSubmit_BackendFailureLeavesCart(t *testing.T) {
	creator := &mockOrderCreator{err: errors.New("stok tidak mencukupi")}
	svc, carts, current := newTestCheckout(twoShirtCart(), parangCatalog(), creator)

	_, err := svc.Submit(context.Background(), "s", validForm())
	require.Error(t, err)
	assert.False(t, carts.cleared, "cart must stay intact for a retry")
	assert.Nil(t, current.order)
}

func TestSubmit_ProductLookupFallsBackToCachedLine(t *testing.T) {
	creator := &mockOrderCreator{order: &domain.Order{ID: 1}}
	// no products resolvable; line carries the cached price
	svc, _, _ := newTestCheckout(twoShirtCart(), nil, creator)

	_, err := svc.Submit(context.Background(), "s", validForm())
	require.NoError(t, err)

	req := creator.lastReq
	require.Len(t, req.Items, 1)
	assert.Equal(t, 100000.0, req.Items[0].Price, "cached full price, no discount known")
	assert.Equal(t, 200000.0, req.OrderData.Subtotal)
}

func TestSubmit_OneLookupFailureDoesNotAbortOthers(t *testing.T) {
	creator := &mockOrderCreator{order: &domain.Order{ID: 1}}
	cart := twoShirtCart()
	cart.Items = append(cart.Items, domain.CartLine{ProductID: 99, Quantity: 1, Price: 50000})

	svc, _, _ := newTestCheckout(cart, parangCatalog(), creator)

	_, err := svc.Submit(context.Background(), "s", validForm())
	require.NoError(t, err)
	assert.Len(t, creator.lastReq.Items, 2)
}
