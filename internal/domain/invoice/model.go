// Package invoice models periodic billing invoices. An invoice is created
// at most once per order per run and is immutable once created.
package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/speero/partsbilling/internal/errors"
)

// Invoice is one billing document for a group of an order's line items.
// Monetary fields hold the amounts charged or consumed by THIS invoice,
// not the order's full authorized amounts, so summing a field across an
// order's invoices yields its cumulative consumption.
type Invoice struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`

	// PartIDs are the stock/quota line items billed by this invoice.
	PartIDs []string `json:"part_ids,omitempty"`
	// RequestPartIDs are the request line items billed by this invoice.
	RequestPartIDs []string `json:"request_part_ids,omitempty"`

	// TotalPartsAmount is the rounded sum of raw part prices before any
	// adjustment.
	TotalPartsAmount decimal.Decimal `json:"total_parts_amount"`
	// TotalAmount is the final payable amount after delivery fee, wallet
	// and discount adjustments. Never negative.
	TotalAmount decimal.Decimal `json:"total_amount"`

	DeliveryFees        decimal.Decimal `json:"delivery_fees"`
	WalletPaymentAmount decimal.Decimal `json:"wallet_payment_amount"`
	DiscountAmount      decimal.Decimal `json:"discount_amount"`

	CreatedAt time.Time `json:"created_at"`
}

// Validate validates the invoice.
func (i *Invoice) Validate() error {
	if i.OrderID == "" {
		return ierr.NewError("order_id is required").
			Mark(ierr.ErrValidation)
	}
	if i.TotalAmount.IsNegative() {
		return ierr.NewError("invoice validation failed").
			WithHint("total_amount must be non negative").
			WithReportableDetails(map[string]any{
				"order_id":     i.OrderID,
				"total_amount": i.TotalAmount.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if i.TotalPartsAmount.IsNegative() {
		return ierr.NewError("invoice validation failed").
			WithHint("total_parts_amount must be non negative").
			Mark(ierr.ErrValidation)
	}
	if len(i.PartIDs) == 0 && len(i.RequestPartIDs) == 0 {
		return ierr.NewError("invoice validation failed").
			WithHint("an invoice must bill at least one line item").
			Mark(ierr.ErrValidation)
	}
	return nil
}
