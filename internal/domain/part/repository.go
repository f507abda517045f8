package part

import (
	"context"
	"time"

	"github.com/speero/partsbilling/internal/types"
)

// Filter defines query parameters for listing parts. Nil fields are ignored.
type Filter struct {
	// CreatedAfter keeps parts created strictly after the given time.
	CreatedAfter *time.Time

	// FulfillmentCompleted filters on presence of a fulfillment timestamp.
	FulfillmentCompleted *bool

	// Priced filters on presence of a pricing timestamp.
	Priced *bool

	// HasInvoice filters on presence of an invoice back-reference.
	HasInvoice *bool

	// Classes keeps parts of the given classes only.
	Classes []types.PartClass
}

// Matches reports whether a part satisfies the filter.
func (f *Filter) Matches(p *Part) bool {
	if f == nil {
		return true
	}
	if f.CreatedAfter != nil && !p.CreatedAt.After(*f.CreatedAfter) {
		return false
	}
	if f.FulfillmentCompleted != nil && *f.FulfillmentCompleted != (p.FulfillmentCompletedAt != nil) {
		return false
	}
	if f.Priced != nil && *f.Priced != (p.PricedAt != nil) {
		return false
	}
	if f.HasInvoice != nil && *f.HasInvoice != p.Invoiced() {
		return false
	}
	if len(f.Classes) > 0 {
		found := false
		for _, c := range f.Classes {
			if p.Class == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// OrderPartRepository is the store of stock and quota order parts.
type OrderPartRepository interface {
	// List returns parts matching the filter.
	List(ctx context.Context, filter *Filter) ([]*Part, error)

	// StampInvoice sets the invoice back-reference on a part.
	StampInvoice(ctx context.Context, partID, invoiceID string) error
}

// RequestPartRepository is the store of request parts. It shares the
// contract of OrderPartRepository but is a physically separate collection.
type RequestPartRepository interface {
	List(ctx context.Context, filter *Filter) ([]*Part, error)
	StampInvoice(ctx context.Context, partID, invoiceID string) error
}
