// internal/infrastructure/store/store.go
package store

import (
	"context"
	"errors"
)

// Collection names used by the storefront.
const (
	Products = "products"
	Cart     = "cart"
	Orders   = "DOrders"
	Invoices = "invoice"
	Users    = "users"
)

// ErrNotFound is returned when a document does not exist in a collection.
var ErrNotFound = errors.New("document not found")

// Store is the capability set the storefront consumes from the document
// store: point reads by id, single-field equality queries, inserts with
// store-assigned ids, partial updates and deletes. Any remote failure is
// returned as-is; callers treat it as fatal for the current step and never
// retry automatically.
type Store interface {
	// Get decodes the document with the given id into out.
	Get(ctx context.Context, collection, id string, out any) error

	// Query decodes all documents where field equals value into out,
	// which must be a pointer to a slice.
	Query(ctx context.Context, collection, field string, value any, out any) error

	// List decodes every document in a collection into out.
	List(ctx context.Context, collection string, out any) error

	// Insert stores a new document and returns its assigned id.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// Update overwrites the given fields on an existing document.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	// Delete removes a document. Deleting an absent document is not an error.
	Delete(ctx context.Context, collection, id string) error
}
