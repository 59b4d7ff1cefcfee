// internal/domain/checkout/errors.go
package checkout

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is returned when checkout is attempted without a
	// signed-in user.
	ErrNotAuthenticated = errors.New("user is not logged in")

	// ErrEmptyCart is returned when checkout is attempted with no cart items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrOrderPersistFailed wraps a failure to write the order document.
	// No stock has been touched when this is returned.
	ErrOrderPersistFailed = errors.New("failed to persist order")

	// ErrStoreFailed wraps an unexpected store failure during stock
	// adjustment. The order document already exists when this is returned.
	ErrStoreFailed = errors.New("store operation failed")
)

// InsufficientStockError aborts the stock adjustment loop when a product's
// quantity would go negative. Items processed before the failing one keep
// their decremented stock.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.ProductName)
}
