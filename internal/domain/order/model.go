// Package order models the parts order being billed. Orders are owned and
// mutated by upstream order management; invoicing only appends to the
// invoice id set.
package order

import (
	"github.com/shopspring/decimal"
)

// Order carries the billing-relevant fields of a parts order.
type Order struct {
	ID string `json:"id"`

	// DeliveryFees is a flat fee charged on the order's first invoice only.
	DeliveryFees decimal.Decimal `json:"delivery_fees"`

	// WalletPaymentAmount is pre-authorized wallet credit, consumable
	// across the order's invoices up to this total.
	WalletPaymentAmount decimal.Decimal `json:"wallet_payment_amount"`

	// DiscountAmount is a pre-authorized discount, consumable across the
	// order's invoices up to this total.
	DiscountAmount decimal.Decimal `json:"discount_amount"`

	// InvoiceIDs is the growing set of invoices created for this order.
	InvoiceIDs []string `json:"invoice_ids,omitempty"`
}
