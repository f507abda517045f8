package dto

// RunStatus summarizes the outcome of one invoicing run.
type RunStatus string

const (
	RunStatusSuccess RunStatus = "success"
	RunStatusPartial RunStatus = "partial"
)

// FailureKind classifies a per-order failure.
type FailureKind string

const (
	// FailureKindDomain is a business-rule violation, e.g. a negative
	// computed amount. The group is abandoned, not retried.
	FailureKindDomain FailureKind = "domain_error"
	// FailureKindInfrastructure is a repository or propagation failure.
	// The group's items stay eligible for the next run.
	FailureKindInfrastructure FailureKind = "infrastructure_error"
)

// GroupFailure describes one order group that produced no invoice.
type GroupFailure struct {
	OrderID string      `json:"order_id"`
	Kind    FailureKind `json:"kind"`
	Reason  string      `json:"reason"`
}

// CreateInvoicesResponse is the report of one invoicing run. It is always
// returned, whatever happened to individual groups, so callers never have
// to interpret an absent result.
type CreateInvoicesResponse struct {
	Status     RunStatus      `json:"status"`
	Message    string         `json:"message"`
	InvoiceIDs []string       `json:"invoice_ids"`
	Failures   []GroupFailure `json:"failures,omitempty"`
}
