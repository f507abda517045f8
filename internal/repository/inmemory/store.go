// Package inmemory provides in-memory repository implementations, used by
// tests and as a development stand-in for the external datastore.
package inmemory

import (
	"context"
	"sync"

	ierr "github.com/speero/partsbilling/internal/errors"
)

// Store is a generic thread-safe in-memory key-value store used as the base
// for the repository implementations.
type Store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewStore creates a new in-memory store
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		items: make(map[string]T),
	}
}

// Create stores an item under the given id.
func (s *Store[T]) Create(_ context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return ierr.NewErrorf("item already exists with id %s", id).
			Mark(ierr.ErrAlreadyExists)
	}
	s.items[id] = item
	return nil
}

// Get retrieves an item by id.
func (s *Store[T]) Get(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[id]
	if !exists {
		var zero T
		return zero, ierr.NewErrorf("item not found with id %s", id).
			Mark(ierr.ErrNotFound)
	}
	return item, nil
}

// Update replaces the item stored under the given id.
func (s *Store[T]) Update(_ context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return ierr.NewErrorf("item not found with id %s", id).
			Mark(ierr.ErrNotFound)
	}
	s.items[id] = item
	return nil
}

// Upsert stores the item whether or not the id exists.
func (s *Store[T]) Upsert(_ context.Context, id string, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[id] = item
}

// List returns all items matching the filter function. A nil filter
// matches everything.
func (s *Store[T]) List(_ context.Context, filterFn func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if filterFn == nil || filterFn(item) {
			result = append(result, item)
		}
	}
	return result
}

// Count returns the number of stored items.
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear removes all items.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]T)
}
