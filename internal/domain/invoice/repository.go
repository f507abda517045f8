package invoice

import "context"

// Projection field names accepted by ListByOrderID.
const (
	FieldWalletPaymentAmount = "wallet_payment_amount"
	FieldDiscountAmount      = "discount_amount"
	FieldDeliveryFees        = "delivery_fees"
)

// Repository is the store of invoices.
type Repository interface {
	// Create persists a new invoice. The caller assigns the id.
	Create(ctx context.Context, inv *Invoice) error

	// ListByOrderID returns the order's invoices, optionally projected to
	// the given fields. Order of results is unspecified.
	ListByOrderID(ctx context.Context, orderID string, fields ...string) ([]*Invoice, error)
}
