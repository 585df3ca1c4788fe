package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fitrinurazis/batik-storefront/internal/domain"
	"github.com/redis/go-redis/v9"
)

var ErrNoCurrentOrder = errors.New("no current order for session")

// currentOrderTTL matches the 24-hour payment window: an order the customer
// never pays for ages out of the session on its own.
const currentOrderTTL = 24 * time.Hour

// OrderStore keeps the session's in-flight order between checkout and
// payment confirmation.
type OrderStore struct {
	client *redis.Client
}

func NewOrderStore(client *redis.Client) *OrderStore {
	return &OrderStore{client: client}
}

func (s *OrderStore) Set(ctx context.Context, sessionID string, order *domain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal current order: %w", err)
	}

	if err := s.client.Set(ctx, orderKey(sessionID), data, currentOrderTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *OrderStore) Get(ctx context.Context, sessionID string) (*domain.Order, error) {
	data, err := s.client.Get(ctx, orderKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoCurrentOrder
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("unmarshal current order: %w", err)
	}
	return &order, nil
}

func (s *OrderStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, orderKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func orderKey(sessionID string) string {
	return fmt.Sprintf("order:current:%s", sessionID)
}
