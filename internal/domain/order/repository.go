package order

import "context"

// Projection field names accepted by FindOne. Stores backed by a document
// database use them as a select list; the in-memory store ignores them.
const (
	FieldDeliveryFees        = "delivery_fees"
	FieldWalletPaymentAmount = "wallet_payment_amount"
	FieldDiscountAmount      = "discount_amount"
	FieldInvoiceIDs          = "invoice_ids"
)

// Repository is the store of orders.
type Repository interface {
	// FindOne fetches a single order by id, optionally projected to the
	// given fields. A missing order is an error marked ErrNotFound.
	FindOne(ctx context.Context, id string, fields ...string) (*Order, error)

	// AddInvoiceID appends an invoice id to the order's invoice set.
	// Set-add semantics: repeating the call is safe.
	AddInvoiceID(ctx context.Context, orderID, invoiceID string) error
}
