// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/infrastructure/store"
)

// Service orchestrates the checkout pipeline: order creation, stock
// decrements and cart clearing run as separate sequential writes with no
// transaction spanning them. A failure mid-pipeline leaves the earlier
// writes in place.
type Service struct {
	store  store.Store
	config *config.Config
	logger *logrus.Logger
}

// NewService creates a new checkout service
func NewService(st store.Store, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		store:  st,
		config: cfg,
		logger: logger,
	}
}

// PlaceOrder runs the checkout pipeline for the given user and cart items
// and returns the id of the created order.
//
// Pipeline order:
//  1. Validation (no side effects on failure).
//  2. Order document insert.
//  3. Per-item stock decrement, sequentially. A missing product is skipped
//     with a warning; a quantity that would go negative aborts the loop
//     without rolling back earlier decrements or the order.
//  4. Best-effort cart clear; delete failures are logged and do not fail
//     the checkout.
func (s *Service) PlaceOrder(ctx context.Context, email string, items []cart.CartItem) (string, error) {
	if email == "" {
		return "", ErrNotAuthenticated
	}
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	lines := make([]order.OrderItem, 0, len(items))
	var total int64
	for _, item := range items {
		lineTotal := item.Price * int64(item.Quantity)
		lines = append(lines, order.OrderItem{
			ProductName: item.ProductName,
			Price:       item.Price,
			PID:         item.PID,
			Quantity:    item.Quantity,
			ImageURL:    item.ImageURL,
			TotalAmount: lineTotal,
		})
		total += lineTotal
	}

	ord := order.Order{
		Date:  time.Now().UTC().Format("2006-01-02"),
		Email: email,
		Items: lines,
		Total: total,
	}

	orderID, err := s.store.Insert(ctx, store.Orders, &ord)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOrderPersistFailed, err)
	}

	for _, item := range items {
		var prod product.Product
		if err := s.store.Get(ctx, store.Products, item.PID, &prod); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				s.logger.WithFields(logrus.Fields{
					"order_id":   orderID,
					"product_id": item.PID,
				}).Warn("Skipping stock decrement for missing product")
				continue
			}
			return "", fmt.Errorf("%w: %v", ErrStoreFailed, err)
		}

		newQuantity := prod.Quantity - item.Quantity
		if newQuantity < 0 {
			return "", &InsufficientStockError{ProductName: prod.ProductName}
		}

		if err := s.store.Update(ctx, store.Products, item.PID, map[string]any{
			"quantity": newQuantity,
		}); err != nil {
			return "", fmt.Errorf("%w: %v", ErrStoreFailed, err)
		}
	}

	for _, item := range items {
		if err := s.store.Delete(ctx, store.Cart, item.ID); err != nil {
			s.logger.WithFields(logrus.Fields{
				"order_id":     orderID,
				"cart_item_id": item.ID,
			}).Warn("Failed to remove cart item after checkout")
		}
	}

	return orderID, nil
}
