// Package part models order line items across their two physical origins:
// order parts fulfilled from stock or quota, and request parts priced
// individually. For invoicing both behave as one logical line item.
package part

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/speero/partsbilling/internal/types"
)

// Part is a single billable order line item.
type Part struct {
	ID      string          `json:"id"`
	OrderID string          `json:"order_id"`
	Class   types.PartClass `json:"part_class"`

	// PriceBeforeDiscount is set for stock and quota parts.
	PriceBeforeDiscount decimal.Decimal `json:"price_before_discount"`
	// PremiumPriceBeforeDiscount is set for request parts.
	PremiumPriceBeforeDiscount decimal.Decimal `json:"premium_price_before_discount"`

	CreatedAt time.Time `json:"created_at"`
	// FulfillmentCompletedAt marks a stock/quota part as delivered.
	FulfillmentCompletedAt *time.Time `json:"fulfillment_completed_at,omitempty"`
	// PricedAt marks a request part as priced.
	PricedAt *time.Time `json:"priced_at,omitempty"`
	// InvoiceID is stamped exactly once, when the part is billed.
	InvoiceID *string `json:"invoice_id,omitempty"`
}

// BillablePrice returns the price field appropriate for the part class.
func (p *Part) BillablePrice() decimal.Decimal {
	if p.Class.IsRequest() {
		return p.PremiumPriceBeforeDiscount
	}
	return p.PriceBeforeDiscount
}

// Invoiced reports whether the part has already been billed.
func (p *Part) Invoiced() bool {
	return p.InvoiceID != nil && *p.InvoiceID != ""
}
