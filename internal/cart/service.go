package cart

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/fitrinurazis/batik-storefront/internal/cart/cache"
	"github.com/fitrinurazis/batik-storefront/internal/cart/repository"
	"github.com/fitrinurazis/batik-storefront/internal/domain"
	"golang.org/x/sync/singleflight"
)

// ProductResolver provides live product data for totals computation. Lines
// whose product cannot be resolved are skipped, never fatal.
type ProductResolver interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}

type Service struct {
	repo     repository.CartRepository
	cache    cache.CartCache
	products ProductResolver
	sfg      singleflight.Group // Prevents cache stampede
}

func NewService(repo repository.CartRepository, cache cache.CartCache, products ProductResolver) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		products: products,
	}
}

// Get returns the session's cart. A missing cart is an empty cart, never an
// error.
func (s *Service) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	v, err, _ := s.sfg.Do(sessionID, func() (interface{}, error) {

		cart, err := s.cache.Get(ctx, sessionID)
		if err == nil {
			return cart, nil // cart is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		cart, errGet := s.repo.GetCart(ctx, sessionID)
		if errGet != nil && errors.Is(errGet, repository.ErrCartNotFound) {
			return &domain.Cart{
				SessionID: sessionID,
				Items:     nil,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		}
		if errGet != nil {
			return nil, errGet
		}

		go func() {
			errSet := s.cache.Set(context.Background(), sessionID, cart)
			if errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return cart, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}

func (s *Service) AddItem(ctx context.Context, sessionID string, line domain.CartLine) error {
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	if err := s.repo.AddItem(ctx, sessionID, line); err != nil {
		log.Printf("repo add item error: %v", err)
		return err
	}

	s.invalidateCache(sessionID)
	return nil
}

// SetQuantity replaces a line's quantity. A quantity below 1 is a no-op and
// leaves the line untouched.
func (s *Service) SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) error {
	if quantity < 1 {
		return nil
	}

	if err := s.repo.UpdateItemQuantity(ctx, sessionID, productID, quantity); err != nil {
		log.Printf("repo update item quantity error: %v", err)
		return err
	}

	s.invalidateCache(sessionID)
	return nil
}

func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int64) error {
	if err := s.repo.RemoveItem(ctx, sessionID, productID); err != nil {
		log.Printf("repo remove item error: %v", err)
		return err
	}

	s.invalidateCache(sessionID)
	return nil
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	err := s.repo.DeleteCart(ctx, sessionID)
	if err != nil && !errors.Is(err, repository.ErrCartNotFound) {
		log.Printf("repo delete cart error: %v", err)
		return err
	}

	s.invalidateCache(sessionID)
	return nil
}

func (s *Service) invalidateCache(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, sessionID); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}
