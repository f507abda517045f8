package service

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/speero/partsbilling/internal/domain/invoice"
)

// InvoiceEffectsService propagates back-references after an invoice is
// persisted so the consumed line items are excluded from future runs.
type InvoiceEffectsService interface {
	// OnInvoiceCreated appends the invoice id to the parent order's invoice
	// set and stamps every consumed line item. The three updates run
	// concurrently and do not depend on each other. A partial failure
	// leaves the invoice (and the updates that succeeded) in place; the
	// joined error is returned for reporting, there is no rollback.
	OnInvoiceCreated(ctx context.Context, inv *invoice.Invoice) error
}

type invoiceEffectsService struct {
	ServiceParams
}

// NewInvoiceEffectsService creates a new invoice effects service.
func NewInvoiceEffectsService(params ServiceParams) InvoiceEffectsService {
	return &invoiceEffectsService{ServiceParams: params}
}

func (s *invoiceEffectsService) OnInvoiceCreated(ctx context.Context, inv *invoice.Invoice) error {
	effects := []func(context.Context, *invoice.Invoice) error{
		s.updateOrder,
		s.stampOrderParts,
		s.stampRequestParts,
	}

	errCh := make(chan error, len(effects))
	for _, effect := range effects {
		go func(effect func(context.Context, *invoice.Invoice) error) {
			errCh <- effect(ctx, inv)
		}(effect)
	}

	var joined error
	for range effects {
		if err := <-errCh; err != nil {
			joined = errors.Join(joined, err)
		}
	}
	return joined
}

// updateOrder appends the invoice id to the order's invoice set. Set-add
// semantics make a repeat safe.
func (s *invoiceEffectsService) updateOrder(ctx context.Context, inv *invoice.Invoice) error {
	return s.OrderRepo.AddInvoiceID(ctx, inv.OrderID, inv.ID)
}

func (s *invoiceEffectsService) stampOrderParts(ctx context.Context, inv *invoice.Invoice) error {
	for _, partID := range inv.PartIDs {
		if err := s.OrderPartRepo.StampInvoice(ctx, partID, inv.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *invoiceEffectsService) stampRequestParts(ctx context.Context, inv *invoice.Invoice) error {
	for _, partID := range inv.RequestPartIDs {
		if err := s.RequestPartRepo.StampInvoice(ctx, partID, inv.ID); err != nil {
			return err
		}
	}
	return nil
}
