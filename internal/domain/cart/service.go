// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/infrastructure/store"
)

var (
	// ErrCartItemNotFound is returned when the item does not exist or is
	// owned by another user.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// Service handles cart business logic
type Service struct {
	store  store.Store
	config *config.Config
}

// NewService creates a new cart service
func NewService(st store.Store, cfg *config.Config) *Service {
	return &Service{
		store:  st,
		config: cfg,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// GetItems retrieves the user's cart items, the Cart Aggregate checkout
// consumes.
func (s *Service) GetItems(ctx context.Context, email string) ([]CartItem, error) {
	var items []CartItem
	if err := s.store.Query(ctx, store.Cart, "email", email, &items); err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}
	return items, nil
}

// GetCart retrieves the user's cart with totals
func (s *Service) GetCart(ctx context.Context, email string) (*CartResponse, error) {
	items, err := s.GetItems(ctx, email)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []CartItem{}
	}

	return &CartResponse{
		Email:  email,
		Items:  items,
		Totals: s.calculateTotals(items),
	}, nil
}

// AddToCart adds a product to the cart or updates the existing line. At most
// one cart item exists per (email, pid): the service queries first and
// overwrites quantity and price on a match instead of inserting a duplicate.
// Stock is not checked here; only checkout enforces it.
func (s *Service) AddToCart(ctx context.Context, email string, req *AddToCartRequest) (*CartResponse, error) {
	// Snapshot the product being added
	var prod product.Product
	err := s.store.Get(ctx, store.Products, req.ProductID, &prod)
	if errors.Is(err, store.ErrNotFound) {
		return nil, product.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	// The store only supports single-field equality filters, so query by
	// owner and match the product in memory.
	items, err := s.GetItems(ctx, email)
	if err != nil {
		return nil, err
	}

	var existing *CartItem
	for i := range items {
		if items[i].PID == req.ProductID {
			existing = &items[i]
			break
		}
	}

	if existing != nil {
		// Overwrite quantity and price on the matched item, leaving the
		// rest of the document untouched.
		err := s.store.Update(ctx, store.Cart, existing.ID, map[string]any{
			"quantity": req.Quantity,
			"price":    prod.Price,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	} else {
		newItem := CartItem{
			PID:         req.ProductID,
			Email:       email,
			ProductName: prod.ProductName,
			Price:       prod.Price,
			Quantity:    req.Quantity,
			ImageURL:    prod.ImageURL,
			AddedAt:     time.Now().UTC(),
		}
		if _, err := s.store.Insert(ctx, store.Cart, newItem); err != nil {
			return nil, fmt.Errorf("failed to add cart item: %w", err)
		}
	}

	// Return updated cart
	return s.GetCart(ctx, email)
}

// RemoveFromCart removes a single item owned by the user
func (s *Service) RemoveFromCart(ctx context.Context, email, itemID string) (*CartResponse, error) {
	var item CartItem
	err := s.store.Get(ctx, store.Cart, itemID, &item)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart item: %w", err)
	}

	if item.Email != email {
		return nil, ErrCartItemNotFound
	}

	if err := s.store.Delete(ctx, store.Cart, itemID); err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}

	return s.GetCart(ctx, email)
}

// GetCartItemCount returns the number of units in the cart
func (s *Service) GetCartItemCount(ctx context.Context, email string) (int, error) {
	items, err := s.GetItems(ctx, email)
	if err != nil {
		return 0, err
	}

	totalItems := 0
	for _, item := range items {
		totalItems += item.Quantity
	}
	return totalItems, nil
}

func (s *Service) calculateTotals(items []CartItem) CartTotals {
	var totals CartTotals

	totals.ItemCount = len(items)
	for _, item := range items {
		totals.TotalQuantity += item.Quantity
		totals.SubTotal += item.Price * int64(item.Quantity)
	}
	return totals
}
