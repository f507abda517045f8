package settings

import "context"

// Repository is the store of settings.
type Repository interface {
	// Get fetches a setting by key. A missing key is an error marked
	// ErrNotFound.
	Get(ctx context.Context, key string) (*Setting, error)

	// Set upserts a setting value by key.
	Set(ctx context.Context, key string, value map[string]any) error
}
