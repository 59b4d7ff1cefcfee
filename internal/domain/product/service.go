// internal/domain/product/service.go
package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/infrastructure/store"
)

// ErrProductNotFound is returned when the requested product does not exist
var ErrProductNotFound = errors.New("product not found")

// Service handles catalog reads
type Service struct {
	store  store.Store
	config *config.Config
}

// NewService creates a new product service
func NewService(st store.Store, cfg *config.Config) *Service {
	return &Service{
		store:  st,
		config: cfg,
	}
}

// GetProducts retrieves the full catalog
func (s *Service) GetProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := s.store.List(ctx, store.Products, &products); err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a single product by id
func (s *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	var prod Product
	err := s.store.Get(ctx, store.Products, id, &prod)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return &prod, nil
}
