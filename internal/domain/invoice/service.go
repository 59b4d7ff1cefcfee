// internal/domain/invoice/service.go
package invoice

import (
	"context"
	"errors"
	"fmt"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/infrastructure/store"
)

// ErrInvoiceNotFound is returned when no invoice matches the requested
// number for the given customer
var ErrInvoiceNotFound = errors.New("invoice not found")

// Service handles invoice reads
type Service struct {
	store  store.Store
	config *config.Config
}

// NewService creates a new invoice service
func NewService(st store.Store, cfg *config.Config) *Service {
	return &Service{
		store:  st,
		config: cfg,
	}
}

// ListByEmail returns every invoice issued to the given customer
func (s *Service) ListByEmail(ctx context.Context, email string) ([]Invoice, error) {
	var invoices []Invoice
	if err := s.store.Query(ctx, store.Invoices, "customerEmail", email, &invoices); err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		invoices = []Invoice{}
	}
	return invoices, nil
}

// GetByNumber returns the invoice with the given invoice number, scoped to
// the given customer
func (s *Service) GetByNumber(ctx context.Context, email, invoiceNumber string) (*Invoice, error) {
	var invoices []Invoice
	if err := s.store.Query(ctx, store.Invoices, "invoiceNumber", invoiceNumber, &invoices); err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	for i := range invoices {
		if invoices[i].CustomerEmail == email {
			return &invoices[i], nil
		}
	}
	return nil, ErrInvoiceNotFound
}
