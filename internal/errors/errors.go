// Package errors provides the internal error type used across the
// application. Errors are built fluently and marked with a sentinel so
// callers can classify them without inspecting messages.
package errors

import (
	"github.com/cockroachdb/errors"
)

// Sentinel marks. Every error produced by this package is marked with
// exactly one of these.
var (
	ErrValidation       = errors.New("validation_error")
	ErrNotFound         = errors.New("not_found")
	ErrAlreadyExists    = errors.New("already_exists")
	ErrDatabase         = errors.New("database_error")
	ErrInternal         = errors.New("internal_error")
	ErrInvalidOperation = errors.New("invalid_operation")
	ErrSystem           = errors.New("system_error")
)

// InternalError is the concrete error type carried through the call stack.
// Message is for operators and logs; Hint is safe to surface to users;
// ReportableDetails carries structured context for error reporting.
type InternalError struct {
	Message           string
	Hint              string
	ReportableDetails map[string]any
	cause             error
}

func (e *InternalError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.cause
}

// Hint extracts the hint from an error chain, if any.
func Hint(err error) string {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.Hint
	}
	return ""
}

// Details extracts the reportable details from an error chain, if any.
func Details(err error) map[string]any {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.ReportableDetails
	}
	return nil
}

// Classification helpers.

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}
