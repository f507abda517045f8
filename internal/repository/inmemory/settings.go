package inmemory

import (
	"context"
	"maps"

	"github.com/speero/partsbilling/internal/domain/settings"
	ierr "github.com/speero/partsbilling/internal/errors"
	"github.com/speero/partsbilling/internal/types"
)

// SettingsStore implements settings.Repository
type SettingsStore struct {
	*Store[*settings.Setting]
}

// NewSettingsStore creates a new in-memory settings store
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{
		Store: NewStore[*settings.Setting](),
	}
}

func copySetting(s *settings.Setting) *settings.Setting {
	if s == nil {
		return nil
	}
	copied := *s
	copied.Value = maps.Clone(s.Value)
	return &copied
}

func (s *SettingsStore) Get(ctx context.Context, key string) (*settings.Setting, error) {
	setting, err := s.Store.Get(ctx, key)
	if err != nil {
		return nil, ierr.NewError("setting not found").
			WithReportableDetails(map[string]any{
				"key": key,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copySetting(setting), nil
}

func (s *SettingsStore) Set(ctx context.Context, key string, value map[string]any) error {
	setting := &settings.Setting{
		ID:    types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SETTING),
		Key:   key,
		Value: maps.Clone(value),
	}
	if existing, err := s.Store.Get(ctx, key); err == nil {
		setting.ID = existing.ID
	}
	s.Store.Upsert(ctx, key, setting)
	return nil
}
