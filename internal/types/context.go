package types

import "context"

type contextKey string

const (
	// CtxRunID carries the identifier of the current billing run.
	CtxRunID contextKey = "run_id"
)

// SetRunID returns a child context carrying the billing run id.
func SetRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, CtxRunID, runID)
}

// GetRunID returns the billing run id from the context, if set.
func GetRunID(ctx context.Context) string {
	if v, ok := ctx.Value(CtxRunID).(string); ok {
		return v
	}
	return ""
}
