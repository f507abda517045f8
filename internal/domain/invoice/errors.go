package invoice

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NegativeAmountError signals that the computed total for an order group
// came out negative. It abandons invoice creation for that group only;
// other groups in the same run proceed.
type NegativeAmountError struct {
	OrderID string
	Amount  decimal.Decimal
}

func (e *NegativeAmountError) Error() string {
	return fmt.Sprintf("could not create invoice for order %s with total amount %s", e.OrderID, e.Amount)
}
