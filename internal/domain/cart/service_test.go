// internal/domain/cart/service_test.go
package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/infrastructure/store"
)

func newTestService(t *testing.T) (*cart.Service, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	return cart.NewService(st, &config.Config{}), st
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

func TestAddToCartInsertsNewItem(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	deskID := seedProduct(t, st, "Walnut Desk", 24900, 10)

	resp, err := svc.AddToCart(ctx, "ada@example.com", &cart.AddToCartRequest{
		ProductID: deskID,
		Quantity:  2,
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	item := resp.Items[0]
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, deskID, item.PID)
	assert.Equal(t, "ada@example.com", item.Email)
	assert.Equal(t, "Walnut Desk", item.ProductName)
	assert.Equal(t, int64(24900), item.Price)
	assert.Equal(t, 2, item.Quantity)
	assert.False(t, item.AddedAt.IsZero())
}

func TestAddToCartOverwritesExistingLine(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	deskID := seedProduct(t, st, "Walnut Desk", 24900, 10)

	_, err := svc.AddToCart(ctx, "ada@example.com", &cart.AddToCartRequest{ProductID: deskID, Quantity: 2})
	require.NoError(t, err)

	resp, err := svc.AddToCart(ctx, "ada@example.com", &cart.AddToCartRequest{ProductID: deskID, Quantity: 5})
	require.NoError(t, err)

	// The second add replaces the line, it does not accumulate
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
}

func TestAddToCartKeepsCartsSeparatePerUser(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	deskID := seedProduct(t, st, "Walnut Desk", 24900, 10)

	_, err := svc.AddToCart(ctx, "ada@example.com", &cart.AddToCartRequest{ProductID: deskID, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "bob@example.com", &cart.AddToCartRequest{ProductID: deskID, Quantity: 3})
	require.NoError(t, err)

	adaCart, err := svc.GetCart(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Len(t, adaCart.Items, 1)
	assert.Equal(t, 1, adaCart.Items[0].Quantity)

	bobCart, err := svc.GetCart(ctx, "bob@example.com")
	require.NoError(t, err)
	require.Len(t, bobCart.Items, 1)
	assert.Equal(t, 3, bobCart.Items[0].Quantity)
}

func TestAddToCartIgnoresStockLevel(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	deskID := seedProduct(t, st, "Walnut Desk", 24900, 2)

	// Adding more than the available stock is allowed at this stage
	resp, err := svc.AddToCart(ctx, "ada@example.com", &cart.AddToCartRequest{ProductID: deskID, Quantity: 50})
	require.NoError(t, err)
	assert.Equal(t, 50, resp.Items[0].Quantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddToCart(context.Background(), "ada@example.com", &cart.AddToCartRequest{
		ProductID: "no-such-product",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestRemoveFromCart(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	deskID := seedProduct(t, st, "Walnut Desk", 24900, 10)
	resp, err := svc.AddToCart(ctx, "ada@example.com", &cart.AddToCartRequest{ProductID: deskID, Quantity: 1})
	require.NoError(t, err)
	itemID := resp.Items[0].ID

	updated, err := svc.RemoveFromCart(ctx, "ada@example.com", itemID)
	require.NoError(t, err)
	assert.Empty(t, updated.Items)
}

func TestRemoveFromCartOtherUsersItem(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	deskID := seedProduct(t, st, "Walnut Desk", 24900, 10)
	resp, err := svc.AddToCart(ctx, "ada@example.com", &cart.AddToCartRequest{ProductID: deskID, Quantity: 1})
	require.NoError(t, err)

	_, err = svc.RemoveFromCart(ctx, "bob@example.com", resp.Items[0].ID)
	assert.ErrorIs(t, err, cart.ErrCartItemNotFound)
}

func TestGetCartTotals(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	deskID := seedProduct(t, st, "Walnut Desk", 24900, 10)
	shelfID := seedProduct(t, st, "Oak Bookshelf", 15900, 10)

	_, err := svc.AddToCart(ctx, "ada@example.com", &cart.AddToCartRequest{ProductID: deskID, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "ada@example.com", &cart.AddToCartRequest{ProductID: shelfID, Quantity: 1})
	require.NoError(t, err)

	resp, err := svc.GetCart(ctx, "ada@example.com")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Totals.ItemCount)
	assert.Equal(t, 3, resp.Totals.TotalQuantity)
	assert.Equal(t, int64(2*24900+15900), resp.Totals.SubTotal)

	count, err := svc.GetCartItemCount(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestGetCartEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.GetCart(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.Equal(t, int64(0), resp.Totals.SubTotal)
}
