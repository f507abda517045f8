package types

import (
	ierr "github.com/speero/partsbilling/internal/errors"
)

// PartClass identifies the sourcing class of an order line item.
type PartClass string

const (
	// PartClassStock is a part fulfilled from own stock.
	PartClassStock PartClass = "StockPart"
	// PartClassQuota is a part fulfilled from a supplier quota.
	PartClassQuota PartClass = "QuotaPart"
	// PartClassRequest is a part sourced on request and priced individually.
	PartClassRequest PartClass = "requestPart"
)

// Validate validates the part class.
func (c PartClass) Validate() error {
	switch c {
	case PartClassStock, PartClassQuota, PartClassRequest:
		return nil
	default:
		return ierr.NewErrorf("invalid part class: %s", c).
			WithHint("Part class must be one of StockPart, QuotaPart, requestPart").
			Mark(ierr.ErrValidation)
	}
}

// IsRequest returns true for request-sourced parts, which carry a premium
// price instead of a regular one.
func (c PartClass) IsRequest() bool {
	return c == PartClassRequest
}
