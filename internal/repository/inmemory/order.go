package inmemory

import (
	"context"

	"github.com/samber/lo"

	"github.com/speero/partsbilling/internal/domain/order"
	ierr "github.com/speero/partsbilling/internal/errors"
)

// OrderStore implements order.Repository
type OrderStore struct {
	*Store[*order.Order]
}

// NewOrderStore creates a new in-memory order store
func NewOrderStore() *OrderStore {
	return &OrderStore{
		Store: NewStore[*order.Order](),
	}
}

func copyOrder(o *order.Order) *order.Order {
	if o == nil {
		return nil
	}
	copied := *o
	copied.InvoiceIDs = append([]string(nil), o.InvoiceIDs...)
	return &copied
}

// Create seeds an order. Not part of order.Repository; orders are owned by
// upstream order management.
func (s *OrderStore) Create(ctx context.Context, o *order.Order) error {
	if o == nil {
		return ierr.NewError("order cannot be nil").
			WithHint("Order cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.Store.Create(ctx, o.ID, copyOrder(o))
}

// FindOne fetches an order by id. The projection fields are a hint for
// database-backed stores and are ignored here.
func (s *OrderStore) FindOne(ctx context.Context, id string, _ ...string) (*order.Order, error) {
	o, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("order not found").
			WithHint("Order not found").
			WithReportableDetails(map[string]any{
				"order_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyOrder(o), nil
}

func (s *OrderStore) AddInvoiceID(ctx context.Context, orderID, invoiceID string) error {
	o, err := s.Store.Get(ctx, orderID)
	if err != nil {
		return ierr.NewError("order not found").
			WithReportableDetails(map[string]any{
				"order_id": orderID,
			}).
			Mark(ierr.ErrNotFound)
	}

	updated := copyOrder(o)
	if !lo.Contains(updated.InvoiceIDs, invoiceID) {
		updated.InvoiceIDs = append(updated.InvoiceIDs, invoiceID)
	}
	return s.Store.Update(ctx, orderID, updated)
}
