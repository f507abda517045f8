package service

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/speero/partsbilling/internal/domain/invoice"
	"github.com/speero/partsbilling/internal/domain/order"
	"github.com/speero/partsbilling/internal/domain/part"
	"github.com/speero/partsbilling/internal/types"
)

// currencyPrecision is the number of decimal places amounts are rounded to.
const currencyPrecision = 2

// InvoiceAmounts is the computed breakdown for one order group. Monetary
// fields are the amounts charged or consumed by the invoice under
// computation, not the order's authorized totals.
type InvoiceAmounts struct {
	TotalPartsAmount    decimal.Decimal
	TotalAmount         decimal.Decimal
	DeliveryFees        decimal.Decimal
	WalletPaymentAmount decimal.Decimal
	DiscountAmount      decimal.Decimal

	PartIDs        []string
	RequestPartIDs []string
}

// ComputeInvoiceAmounts computes the invoice breakdown for one order's
// uninvoiced line items given the order record and its prior invoices.
//
// The deductions apply in a fixed sequence to a running total: delivery fee
// (first invoice only), then wallet credit, then discount. Wallet and
// discount are consumable balances shared by all of the order's invoices:
// the remaining balance is the authorized amount minus what prior invoices
// consumed, clamped at zero, and the amount consumed now is capped by the
// running total. A negative final total abandons the group.
func ComputeInvoiceAmounts(parts []*part.Part, ord *order.Order, prior []*invoice.Invoice) (*InvoiceAmounts, error) {
	stockQuota := lo.Filter(parts, func(p *part.Part, _ int) bool {
		return p.Class == types.PartClassStock || p.Class == types.PartClassQuota
	})
	request := lo.Filter(parts, func(p *part.Part, _ int) bool {
		return p.Class == types.PartClassRequest
	})

	// One rounding, after summation.
	totalParts := sumPrices(stockQuota).Add(sumPrices(request)).Round(currencyPrecision)

	totalAmount := totalParts
	deliveryFees := decimal.Zero

	// The flat delivery fee is charged once, on the order's first invoice.
	if !ord.DeliveryFees.IsZero() && len(prior) == 0 {
		deliveryFees = ord.DeliveryFees
		totalAmount = totalAmount.Add(deliveryFees)
	}

	walletConsumed := decimal.Zero
	if !ord.WalletPaymentAmount.IsZero() {
		walletConsumed = consumeBalance(ord.WalletPaymentAmount, totalAmount, prior,
			func(inv *invoice.Invoice) decimal.Decimal { return inv.WalletPaymentAmount })
		totalAmount = totalAmount.Sub(walletConsumed)
	}

	discountConsumed := decimal.Zero
	if !ord.DiscountAmount.IsZero() {
		discountConsumed = consumeBalance(ord.DiscountAmount, totalAmount, prior,
			func(inv *invoice.Invoice) decimal.Decimal { return inv.DiscountAmount })
		totalAmount = totalAmount.Sub(discountConsumed)
	}

	if totalAmount.IsNegative() {
		return nil, &invoice.NegativeAmountError{OrderID: ord.ID, Amount: totalAmount}
	}

	return &InvoiceAmounts{
		TotalPartsAmount:    totalParts,
		TotalAmount:         totalAmount,
		DeliveryFees:        deliveryFees,
		WalletPaymentAmount: walletConsumed,
		DiscountAmount:      discountConsumed,
		PartIDs:             lo.Map(stockQuota, func(p *part.Part, _ int) string { return p.ID }),
		RequestPartIDs:      lo.Map(request, func(p *part.Part, _ int) string { return p.ID }),
	}, nil
}

func sumPrices(parts []*part.Part) decimal.Decimal {
	return lo.Reduce(parts, func(sum decimal.Decimal, p *part.Part, _ int) decimal.Decimal {
		return sum.Add(p.BillablePrice())
	}, decimal.Zero)
}

// consumeBalance folds the prior invoices' consumption out of an authorized
// balance, clamping the remainder at zero on every step, and returns the
// amount consumable now, capped by the pre-deduction total. A negative
// running total consumes nothing, so credit lines still surface as a
// negative final amount.
func consumeBalance(authorized, totalAmount decimal.Decimal, prior []*invoice.Invoice, consumed func(*invoice.Invoice) decimal.Decimal) decimal.Decimal {
	remaining := lo.Reduce(prior, func(acc decimal.Decimal, inv *invoice.Invoice, _ int) decimal.Decimal {
		return decimal.Max(acc.Sub(consumed(inv)), decimal.Zero)
	}, authorized)
	return decimal.Max(decimal.Min(remaining, totalAmount), decimal.Zero)
}
