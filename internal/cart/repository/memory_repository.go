package repository

import (
	"context"
	"sync"
	"time"

	"github.com/fitrinurazis/batik-storefront/internal/domain"
)

// MemoryRepository implements CartRepository with in-memory storage. Used for
// local development without MongoDB and in tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart // sessionID -> cart
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		carts: make(map[string]*domain.Cart),
	}
}

func (m *MemoryRepository) GetCart(_ context.Context, sessionID string) (*domain.Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cart, ok := m.carts[sessionID]
	if !ok {
		return nil, ErrCartNotFound
	}

	// Copy so callers cannot mutate stored state.
	clone := *cart
	clone.Items = make([]domain.CartLine, len(cart.Items))
	copy(clone.Items, cart.Items)
	return &clone, nil
}

func (m *MemoryRepository) AddItem(_ context.Context, sessionID string, line domain.CartLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	line.AddedAt = now

	cart, ok := m.carts[sessionID]
	if !ok {
		m.carts[sessionID] = &domain.Cart{
			SessionID: sessionID,
			Items:     []domain.CartLine{line},
			CreatedAt: now,
			UpdatedAt: now,
		}
		return nil
	}

	if existing := cart.Line(line.ProductID); existing != nil {
		existing.Quantity += line.Quantity
	} else {
		cart.Items = append(cart.Items, line)
	}
	cart.UpdatedAt = now
	return nil
}

func (m *MemoryRepository) UpdateItemQuantity(_ context.Context, sessionID string, productID int64, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cart, ok := m.carts[sessionID]
	if !ok {
		return ErrItemNotFound
	}

	line := cart.Line(productID)
	if line == nil {
		return ErrItemNotFound
	}

	line.Quantity = quantity
	cart.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryRepository) RemoveItem(_ context.Context, sessionID string, productID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cart, ok := m.carts[sessionID]
	if !ok {
		return ErrCartNotFound
	}

	for i, line := range cart.Items {
		if line.ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			cart.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrItemNotFound
}

func (m *MemoryRepository) DeleteCart(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.carts[sessionID]; !ok {
		return ErrCartNotFound
	}
	delete(m.carts, sessionID)
	return nil
}
