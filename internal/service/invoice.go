package service

import (
	"context"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/speero/partsbilling/internal/api/dto"
	"github.com/speero/partsbilling/internal/domain/invoice"
	"github.com/speero/partsbilling/internal/domain/order"
	"github.com/speero/partsbilling/internal/domain/part"
	"github.com/speero/partsbilling/internal/domain/settings"
	ierr "github.com/speero/partsbilling/internal/errors"
	"github.com/speero/partsbilling/internal/types"
)

// InvoiceService drives one invoicing run: fetch candidates, group by order,
// compute amounts, persist invoices, propagate back-references.
type InvoiceService interface {
	// CreateInvoices executes one run and returns its report. Order groups
	// are processed sequentially and isolated from each other: a failing
	// group is recorded in the report and the run continues. The returned
	// error is non-nil only when the run could not start at all (watermark
	// read or candidate fetch failure).
	CreateInvoices(ctx context.Context) (*dto.CreateInvoicesResponse, error)
}

type invoiceService struct {
	ServiceParams
	orderService OrderService
	effects      InvoiceEffectsService
}

// NewInvoiceService creates the invoicing run orchestrator.
func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
		orderService:  NewOrderService(params),
		effects:       NewInvoiceEffectsService(params),
	}
}

func (s *invoiceService) CreateInvoices(ctx context.Context) (*dto.CreateInvoicesResponse, error) {
	runStart := time.Now().UTC()
	ctx = types.SetRunID(ctx, types.GenerateUUIDWithPrefix(types.UUID_PREFIX_RUN))
	log := s.Logger.WithContext(ctx)

	watermark, err := s.watermark(ctx)
	if err != nil {
		return nil, err
	}

	parts, err := s.orderService.GetAllParts(ctx, watermark)
	if err != nil {
		return nil, err
	}
	log.Infow("starting invoicing run",
		"watermark", watermark,
		"candidate_parts", len(parts))

	groups := lo.GroupBy(parts, func(p *part.Part) string { return p.OrderID })

	// Map iteration order is random; sort so runs are reproducible.
	orderIDs := lo.Keys(groups)
	sort.Strings(orderIDs)

	invoiceIDs := make([]string, 0, len(orderIDs))
	var failures []dto.GroupFailure
	infraFailure := false

	for _, orderID := range orderIDs {
		invoiceID, failure, groupErr := s.processGroup(ctx, orderID, groups[orderID])
		if invoiceID != "" {
			invoiceIDs = append(invoiceIDs, invoiceID)
		}
		if failure != nil {
			s.ErrorReporter.ReportError(ctx, groupErr)
			failures = append(failures, *failure)
			if failure.Kind == dto.FailureKindInfrastructure {
				infraFailure = true
			}
		}
	}

	// Advance the watermark only when nothing was lost to infrastructure
	// failures, so skipped items stay in scope for the next run.
	if !infraFailure {
		if err := s.SettingsRepo.Set(ctx, settings.KeyInvoicingWatermark, settings.WatermarkValue(runStart)); err != nil {
			log.Warnw("failed to advance invoicing watermark", "error", err)
			s.ErrorReporter.ReportError(ctx, err)
		}
	}

	resp := &dto.CreateInvoicesResponse{
		Status:     dto.RunStatusSuccess,
		Message:    "invoices created successfully.",
		InvoiceIDs: invoiceIDs,
		Failures:   failures,
	}
	if len(failures) > 0 {
		resp.Status = dto.RunStatusPartial
		resp.Message = "invoices created with failures."
	}

	log.Infow("completed invoicing run",
		"created", len(invoiceIDs),
		"failed_groups", len(failures),
		"status", resp.Status)
	return resp, nil
}

// watermark returns the lookback bound for this run: the persisted start
// time of the last successful run, or the configured initial lookback when
// no run has completed yet.
func (s *invoiceService) watermark(ctx context.Context) (time.Time, error) {
	setting, err := s.SettingsRepo.Get(ctx, settings.KeyInvoicingWatermark)
	if err != nil {
		if ierr.IsNotFound(err) {
			return s.Config.Billing.InitialLookbackTime()
		}
		return time.Time{}, err
	}
	return setting.Watermark()
}

// processGroup runs the full cycle for one order group. It returns the
// created invoice id ("" when none), a failure record for the report (nil
// on clean success), and the underlying error for the failure. A created
// invoice id together with a failure means propagation was incomplete.
func (s *invoiceService) processGroup(ctx context.Context, orderID string, parts []*part.Part) (string, *dto.GroupFailure, error) {
	ord, prior, err := s.fetchGroupContext(ctx, orderID)
	if err != nil {
		return "", infraFailure(orderID, err), err
	}

	amounts, err := ComputeInvoiceAmounts(parts, ord, prior)
	if err != nil {
		var negErr *invoice.NegativeAmountError
		if errors.As(err, &negErr) {
			return "", &dto.GroupFailure{
				OrderID: orderID,
				Kind:    dto.FailureKindDomain,
				Reason:  negErr.Error(),
			}, err
		}
		return "", infraFailure(orderID, err), err
	}

	inv := &invoice.Invoice{
		ID:                  types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		OrderID:             orderID,
		PartIDs:             amounts.PartIDs,
		RequestPartIDs:      amounts.RequestPartIDs,
		TotalPartsAmount:    amounts.TotalPartsAmount,
		TotalAmount:         amounts.TotalAmount,
		DeliveryFees:        amounts.DeliveryFees,
		WalletPaymentAmount: amounts.WalletPaymentAmount,
		DiscountAmount:      amounts.DiscountAmount,
		CreatedAt:           time.Now().UTC(),
	}
	if err := inv.Validate(); err != nil {
		return "", infraFailure(orderID, err), err
	}
	if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
		return "", infraFailure(orderID, err), err
	}

	if err := s.effects.OnInvoiceCreated(ctx, inv); err != nil {
		// The invoice stays; there is no rollback. The gap is surfaced in
		// the report and the affected items remain eligible next run.
		err = ierr.WithError(err).
			WithMessage("invoice created but propagation incomplete").
			WithReportableDetails(map[string]any{
				"invoice_id": inv.ID,
				"order_id":   orderID,
			}).
			Mark(ierr.ErrDatabase)
		return inv.ID, infraFailure(orderID, err), err
	}

	return inv.ID, nil, nil
}

// fetchGroupContext fetches the order record and its invoice history
// concurrently; neither depends on the other.
func (s *invoiceService) fetchGroupContext(ctx context.Context, orderID string) (*order.Order, []*invoice.Invoice, error) {
	type historyResult struct {
		invoices []*invoice.Invoice
		err      error
	}

	historyCh := make(chan historyResult, 1)
	go func() {
		invoices, err := s.InvoiceRepo.ListByOrderID(ctx, orderID,
			invoice.FieldWalletPaymentAmount,
			invoice.FieldDiscountAmount,
			invoice.FieldDeliveryFees,
		)
		historyCh <- historyResult{invoices: invoices, err: err}
	}()

	ord, err := s.orderService.GetOrderByID(ctx, orderID,
		order.FieldDeliveryFees,
		order.FieldWalletPaymentAmount,
		order.FieldDiscountAmount,
	)
	history := <-historyCh

	if err != nil {
		return nil, nil, err
	}
	if history.err != nil {
		return nil, nil, history.err
	}
	return ord, history.invoices, nil
}

func infraFailure(orderID string, err error) *dto.GroupFailure {
	return &dto.GroupFailure{
		OrderID: orderID,
		Kind:    dto.FailureKindInfrastructure,
		Reason:  err.Error(),
	}
}
