package repository

import (
	"context"
	"testing"

	"github.com/fitrinurazis/batik-storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_AddItem_CreatesCart(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	err := repo.AddItem(ctx, "s1", domain.CartLine{ProductID: 1, Quantity: 2, Name: "Batik Mega Mendung", Price: 150000})
	require.NoError(t, err)

	cart, err := repo.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Batik Mega Mendung", cart.Items[0].Name)
	assert.False(t, cart.Items[0].AddedAt.IsZero())
}

func TestMemoryRepository_AddItem_MergesOnProductID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, "s1", domain.CartLine{ProductID: 1, Quantity: 2}))
	require.NoError(t, repo.AddItem(ctx, "s1", domain.CartLine{ProductID: 1, Quantity: 5}))

	cart, err := repo.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 7, cart.Items[0].Quantity)
}

func TestMemoryRepository_GetCart_NotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.GetCart(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestMemoryRepository_GetCart_ReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, "s1", domain.CartLine{ProductID: 1, Quantity: 2}))

	cart, err := repo.GetCart(ctx, "s1")
	require.NoError(t, err)
	cart.Items[0].Quantity = 99

	again, err := repo.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Items[0].Quantity)
}

func TestMemoryRepository_UpdateItemQuantity(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, "s1", domain.CartLine{ProductID: 1, Quantity: 2}))
	require.NoError(t, repo.UpdateItemQuantity(ctx, "s1", 1, 6))

	cart, err := repo.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 6, cart.Items[0].Quantity)

	assert.ErrorIs(t, repo.UpdateItemQuantity(ctx, "s1", 42, 1), ErrItemNotFound)
}

func TestMemoryRepository_RemoveItem(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, "s1", domain.CartLine{ProductID: 1, Quantity: 2}))
	require.NoError(t, repo.AddItem(ctx, "s1", domain.CartLine{ProductID: 2, Quantity: 1}))

	require.NoError(t, repo.RemoveItem(ctx, "s1", 1))

	cart, err := repo.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].ProductID)

	assert.ErrorIs(t, repo.RemoveItem(ctx, "s1", 1), ErrItemNotFound)
}

func TestMemoryRepository_DeleteCart(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.AddItem(ctx, "s1", domain.CartLine{ProductID: 1, Quantity: 2}))
	require.NoError(t, repo.DeleteCart(ctx, "s1"))

	_, err := repo.GetCart(ctx, "s1")
	assert.ErrorIs(t, err, ErrCartNotFound)

	assert.ErrorIs(t, repo.DeleteCart(ctx, "s1"), ErrCartNotFound)
}
