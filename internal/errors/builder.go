package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder builds an *InternalError fluently. The chain is terminated
// by Mark, which attaches the classification sentinel.
type ErrorBuilder struct {
	err *InternalError
}

// NewError starts a builder with the given message.
func NewError(message string) *ErrorBuilder {
	return &ErrorBuilder{err: &InternalError{Message: message}}
}

// NewErrorf starts a builder with a formatted message.
func NewErrorf(format string, args ...any) *ErrorBuilder {
	return NewError(fmt.Sprintf(format, args...))
}

// WithError starts a builder wrapping an existing cause.
func WithError(cause error) *ErrorBuilder {
	return &ErrorBuilder{err: &InternalError{
		Message: "an error occurred",
		cause:   cause,
	}}
}

// WithMessage overrides the builder's message.
func (b *ErrorBuilder) WithMessage(message string) *ErrorBuilder {
	b.err.Message = message
	return b
}

// WithMessagef overrides the builder's message with a formatted one.
func (b *ErrorBuilder) WithMessagef(format string, args ...any) *ErrorBuilder {
	b.err.Message = fmt.Sprintf(format, args...)
	return b
}

// WithHint sets a user-safe hint.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err.Hint = hint
	return b
}

// WithHintf sets a formatted user-safe hint.
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.err.Hint = fmt.Sprintf(format, args...)
	return b
}

// WithReportableDetails attaches structured context for error reporting.
func (b *ErrorBuilder) WithReportableDetails(details map[string]any) *ErrorBuilder {
	b.err.ReportableDetails = details
	return b
}

// Mark finalizes the builder, marking the error with the given sentinel.
func (b *ErrorBuilder) Mark(mark error) error {
	return errors.Mark(b.err, mark)
}
