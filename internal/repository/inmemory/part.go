package inmemory

import (
	"context"

	"github.com/samber/lo"

	"github.com/speero/partsbilling/internal/domain/part"
	ierr "github.com/speero/partsbilling/internal/errors"
)

// PartStore satisfies both part.OrderPartRepository and
// part.RequestPartRepository; the two physical collections are represented
// by two separate instances.
type PartStore struct {
	*Store[*part.Part]
}

// NewPartStore creates a new in-memory part store
func NewPartStore() *PartStore {
	return &PartStore{
		Store: NewStore[*part.Part](),
	}
}

func copyPart(p *part.Part) *part.Part {
	if p == nil {
		return nil
	}
	copied := *p
	if p.FulfillmentCompletedAt != nil {
		copied.FulfillmentCompletedAt = lo.ToPtr(*p.FulfillmentCompletedAt)
	}
	if p.PricedAt != nil {
		copied.PricedAt = lo.ToPtr(*p.PricedAt)
	}
	if p.InvoiceID != nil {
		copied.InvoiceID = lo.ToPtr(*p.InvoiceID)
	}
	return &copied
}

// Create seeds a part. Not part of the repository contracts; parts are
// created by upstream fulfillment and pricing.
func (s *PartStore) Create(ctx context.Context, p *part.Part) error {
	if p == nil {
		return ierr.NewError("part cannot be nil").
			WithHint("Part cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if err := p.Class.Validate(); err != nil {
		return err
	}
	return s.Store.Create(ctx, p.ID, copyPart(p))
}

func (s *PartStore) List(ctx context.Context, filter *part.Filter) ([]*part.Part, error) {
	parts := s.Store.List(ctx, filter.Matches)

	result := make([]*part.Part, len(parts))
	for i, p := range parts {
		result[i] = copyPart(p)
	}
	return result, nil
}

func (s *PartStore) StampInvoice(ctx context.Context, partID, invoiceID string) error {
	p, err := s.Store.Get(ctx, partID)
	if err != nil {
		return ierr.NewError("part not found").
			WithReportableDetails(map[string]any{
				"part_id": partID,
			}).
			Mark(ierr.ErrNotFound)
	}

	updated := copyPart(p)
	updated.InvoiceID = lo.ToPtr(invoiceID)
	return s.Store.Update(ctx, partID, updated)
}
