// internal/domain/checkout/service_test.go
package checkout_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/infrastructure/store"
)

func testConfig() *config.Config {
	return &config.Config{}
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func seedProduct(t *testing.T, st store.Store, name string, price int64, quantity int) string {
	t.Helper()
	id, err := st.Insert(context.Background(), store.Products, &product.Product{
		ProductName: name,
		Price:       price,
		Quantity:    quantity,
	})
	require.NoError(t, err)
	return id
}

func seedCartItem(t *testing.T, st store.Store, email, pid, name string, price int64, quantity int) cart.CartItem {
	t.Helper()
	item := cart.CartItem{
		PID:         pid,
		Email:       email,
		ProductName: name,
		Price:       price,
		Quantity:    quantity,
		AddedAt:     time.Now().UTC(),
	}
	id, err := st.Insert(context.Background(), store.Cart, &item)
	require.NoError(t, err)
	item.ID = id
	return item
}

func getProduct(t *testing.T, st store.Store, id string) product.Product {
	t.Helper()
	var prod product.Product
	require.NoError(t, st.Get(context.Background(), store.Products, id, &prod))
	return prod
}

func TestPlaceOrderRequiresLogin(t *testing.T) {
	st := store.NewMemory()
	svc := checkout.NewService(st, testConfig(), testLogger())

	items := []cart.CartItem{{PID: "p1", Quantity: 1}}
	_, err := svc.PlaceOrder(context.Background(), "", items)
	assert.ErrorIs(t, err, checkout.ErrNotAuthenticated)

	var orders []order.Order
	require.NoError(t, st.List(context.Background(), store.Orders, &orders))
	assert.Empty(t, orders)
}

func TestPlaceOrderRequiresItems(t *testing.T) {
	st := store.NewMemory()
	svc := checkout.NewService(st, testConfig(), testLogger())

	_, err := svc.PlaceOrder(context.Background(), "ada@example.com", nil)
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)

	var orders []order.Order
	require.NoError(t, st.List(context.Background(), store.Orders, &orders))
	assert.Empty(t, orders)
}

func TestPlaceOrderCreatesOrderAndDecrementsStock(t *testing.T) {
	st := store.NewMemory()
	svc := checkout.NewService(st, testConfig(), testLogger())
	ctx := context.Background()

	deskID := seedProduct(t, st, "Walnut Desk", 24900, 10)
	shelfID := seedProduct(t, st, "Oak Bookshelf", 15900, 4)

	items := []cart.CartItem{
		seedCartItem(t, st, "ada@example.com", deskID, "Walnut Desk", 24900, 2),
		seedCartItem(t, st, "ada@example.com", shelfID, "Oak Bookshelf", 15900, 1),
	}

	orderID, err := svc.PlaceOrder(ctx, "ada@example.com", items)
	require.NoError(t, err)
	require.NotEmpty(t, orderID)

	var ord order.Order
	require.NoError(t, st.Get(ctx, store.Orders, orderID, &ord))
	assert.Equal(t, "ada@example.com", ord.Email)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), ord.Date)
	assert.Equal(t, int64(2*24900+15900), ord.Total)
	require.Len(t, ord.Items, 2)
	assert.Equal(t, int64(2*24900), ord.Items[0].TotalAmount)

	assert.Equal(t, 8, getProduct(t, st, deskID).Quantity)
	assert.Equal(t, 3, getProduct(t, st, shelfID).Quantity)

	var remaining []cart.CartItem
	require.NoError(t, st.Query(ctx, store.Cart, "email", "ada@example.com", &remaining))
	assert.Empty(t, remaining)
}

func TestPlaceOrderSkipsMissingProduct(t *testing.T) {
	st := store.NewMemory()
	svc := checkout.NewService(st, testConfig(), testLogger())
	ctx := context.Background()

	deskID := seedProduct(t, st, "Walnut Desk", 24900, 10)

	items := []cart.CartItem{
		seedCartItem(t, st, "ada@example.com", deskID, "Walnut Desk", 24900, 1),
		seedCartItem(t, st, "ada@example.com", "gone-product", "Retired Lamp", 4900, 3),
	}

	orderID, err := svc.PlaceOrder(ctx, "ada@example.com", items)
	require.NoError(t, err)

	// The order still records the vanished line at its cart snapshot price
	var ord order.Order
	require.NoError(t, st.Get(ctx, store.Orders, orderID, &ord))
	assert.Equal(t, int64(24900+3*4900), ord.Total)

	assert.Equal(t, 9, getProduct(t, st, deskID).Quantity)
}

func TestPlaceOrderInsufficientStockAbortsWithoutRollback(t *testing.T) {
	st := store.NewMemory()
	svc := checkout.NewService(st, testConfig(), testLogger())
	ctx := context.Background()

	deskID := seedProduct(t, st, "Walnut Desk", 24900, 10)
	chairID := seedProduct(t, st, "Linen Armchair", 32900, 1)

	items := []cart.CartItem{
		seedCartItem(t, st, "ada@example.com", deskID, "Walnut Desk", 24900, 4),
		seedCartItem(t, st, "ada@example.com", chairID, "Linen Armchair", 32900, 2),
	}

	_, err := svc.PlaceOrder(ctx, "ada@example.com", items)

	var stockErr *checkout.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Linen Armchair", stockErr.ProductName)
	assert.Equal(t, "insufficient stock for Linen Armchair", stockErr.Error())

	// The order was written before the loop and survives the abort
	var orders []order.Order
	require.NoError(t, st.List(ctx, store.Orders, &orders))
	require.Len(t, orders, 1)

	// The first decrement sticks, the failing one does not
	assert.Equal(t, 6, getProduct(t, st, deskID).Quantity)
	assert.Equal(t, 1, getProduct(t, st, chairID).Quantity)

	// Cart clearing never runs on abort
	var remaining []cart.CartItem
	require.NoError(t, st.Query(ctx, store.Cart, "email", "ada@example.com", &remaining))
	assert.Len(t, remaining, 2)
}

func TestPlaceOrderExactStockSucceeds(t *testing.T) {
	st := store.NewMemory()
	svc := checkout.NewService(st, testConfig(), testLogger())
	ctx := context.Background()

	deskID := seedProduct(t, st, "Walnut Desk", 24900, 3)
	items := []cart.CartItem{
		seedCartItem(t, st, "ada@example.com", deskID, "Walnut Desk", 24900, 3),
	}

	_, err := svc.PlaceOrder(ctx, "ada@example.com", items)
	require.NoError(t, err)
	assert.Equal(t, 0, getProduct(t, st, deskID).Quantity)
}

// failingDeleteStore simulates a backend whose cart deletes fail after the
// order and stock writes have gone through.
type failingDeleteStore struct {
	store.Store
}

func (f *failingDeleteStore) Delete(ctx context.Context, collection, id string) error {
	if collection == store.Cart {
		return fmt.Errorf("simulated delete failure")
	}
	return f.Store.Delete(ctx, collection, id)
}

func TestPlaceOrderCartClearIsBestEffort(t *testing.T) {
	mem := store.NewMemory()
	st := &failingDeleteStore{Store: mem}
	svc := checkout.NewService(st, testConfig(), testLogger())
	ctx := context.Background()

	deskID := seedProduct(t, mem, "Walnut Desk", 24900, 10)
	items := []cart.CartItem{
		seedCartItem(t, mem, "ada@example.com", deskID, "Walnut Desk", 24900, 1),
	}

	orderID, err := svc.PlaceOrder(ctx, "ada@example.com", items)
	require.NoError(t, err)
	assert.NotEmpty(t, orderID)

	// The stale cart item is left behind, not surfaced as an error
	var remaining []cart.CartItem
	require.NoError(t, mem.Query(ctx, store.Cart, "email", "ada@example.com", &remaining))
	assert.Len(t, remaining, 1)
}

// failingGetStore simulates an unexpected store outage mid-loop.
type failingGetStore struct {
	store.Store
}

func (f *failingGetStore) Get(ctx context.Context, collection, id string, out any) error {
	if collection == store.Products {
		return errors.New("simulated store outage")
	}
	return f.Store.Get(ctx, collection, id, out)
}

func TestPlaceOrderStoreFailureDuringStockAdjustment(t *testing.T) {
	mem := store.NewMemory()
	st := &failingGetStore{Store: mem}
	svc := checkout.NewService(st, testConfig(), testLogger())
	ctx := context.Background()

	deskID := seedProduct(t, mem, "Walnut Desk", 24900, 10)
	items := []cart.CartItem{
		seedCartItem(t, mem, "ada@example.com", deskID, "Walnut Desk", 24900, 1),
	}

	_, err := svc.PlaceOrder(ctx, "ada@example.com", items)
	assert.ErrorIs(t, err, checkout.ErrStoreFailed)

	// The order insert preceded the failure and is not rolled back
	var orders []order.Order
	require.NoError(t, mem.List(ctx, store.Orders, &orders))
	assert.Len(t, orders, 1)
}
