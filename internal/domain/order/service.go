// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/infrastructure/store"
)

// ErrOrderNotFound is returned when the order does not exist or is owned by
// another user
var ErrOrderNotFound = errors.New("order not found")

// Service handles order history reads
type Service struct {
	store  store.Store
	config *config.Config
}

// NewService creates a new order service
func NewService(st store.Store, cfg *config.Config) *Service {
	return &Service{
		store:  st,
		config: cfg,
	}
}

// ListByEmail returns every order placed by the given user, in store order
func (s *Service) ListByEmail(ctx context.Context, email string) ([]Order, error) {
	var orders []Order
	if err := s.store.Query(ctx, store.Orders, "email", email, &orders); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

// Get returns a single order owned by the given user
func (s *Service) Get(ctx context.Context, email, orderID string) (*Order, error) {
	var ord Order
	if err := s.store.Get(ctx, store.Orders, orderID, &ord); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if ord.Email != email {
		return nil, ErrOrderNotFound
	}
	return &ord, nil
}
