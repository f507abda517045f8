package inmemory

import (
	"context"

	"github.com/speero/partsbilling/internal/domain/invoice"
	ierr "github.com/speero/partsbilling/internal/errors"
)

// InvoiceStore implements invoice.Repository
type InvoiceStore struct {
	*Store[*invoice.Invoice]
}

// NewInvoiceStore creates a new in-memory invoice store
func NewInvoiceStore() *InvoiceStore {
	return &InvoiceStore{
		Store: NewStore[*invoice.Invoice](),
	}
}

func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	if inv == nil {
		return nil
	}
	copied := *inv
	copied.PartIDs = append([]string(nil), inv.PartIDs...)
	copied.RequestPartIDs = append([]string(nil), inv.RequestPartIDs...)
	return &copied
}

func (s *InvoiceStore) Create(ctx context.Context, inv *invoice.Invoice) error {
	if inv == nil {
		return ierr.NewError("invoice cannot be nil").
			WithHint("Invoice cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := s.Store.Create(ctx, inv.ID, copyInvoice(inv)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create invoice").
			WithReportableDetails(map[string]any{
				"invoice_id": inv.ID,
				"order_id":   inv.OrderID,
			}).
			Mark(ierr.ErrDatabase)
	}
	return nil
}

// ListByOrderID returns the order's invoices. The projection fields are a
// hint for database-backed stores and are ignored here.
func (s *InvoiceStore) ListByOrderID(ctx context.Context, orderID string, _ ...string) ([]*invoice.Invoice, error) {
	invoices := s.Store.List(ctx, func(inv *invoice.Invoice) bool {
		return inv.OrderID == orderID
	})

	result := make([]*invoice.Invoice, len(invoices))
	for i, inv := range invoices {
		result[i] = copyInvoice(inv)
	}
	return result, nil
}

// Get retrieves a stored invoice, for test assertions.
func (s *InvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	inv, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyInvoice(inv), nil
}
