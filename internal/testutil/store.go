package testutil

import (
	"context"
	"sort"
	"sync"

	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/types"
)

// FilterFunc reports whether item belongs in a result
type FilterFunc[T any] func(item T) bool

// SortFunc is a generic sort function type
type SortFunc[T any] func(i, j T) bool

// InMemoryStore implements a generic in-memory store. Items are cloned on the
// way in and out so callers never share memory with the store.
type InMemoryStore[T any] struct {
	mu     sync.RWMutex
	items  map[string]T
	clone  func(T) T
	entity string
}

// NewInMemoryStore creates a new InMemoryStore
func NewInMemoryStore[T any](entity string, clone func(T) T) *InMemoryStore[T] {
	return &InMemoryStore[T]{
		items:  make(map[string]T),
		clone:  clone,
		entity: entity,
	}
}

func (s *InMemoryStore[T]) notFound(id string) error {
	return ierr.NewErrorf("%s %s not found", s.entity, id).
		WithHintf("%s not found", s.entity).
		Mark(ierr.ErrNotFound)
}

// Create adds a new item to the store
func (s *InMemoryStore[T]) Create(_ context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return ierr.NewErrorf("%s %s already exists", s.entity, id).
			WithHintf("%s already exists", s.entity).
			Mark(ierr.ErrAlreadyExists)
	}

	s.items[id] = s.clone(item)
	return nil
}

// Get retrieves an item by ID
func (s *InMemoryStore[T]) Get(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if item, exists := s.items[id]; exists {
		return s.clone(item), nil
	}

	var zero T
	return zero, s.notFound(id)
}

// Find returns the first item matching fn
func (s *InMemoryStore[T]) Find(_ context.Context, fn FilterFunc[T]) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if fn(item) {
			return s.clone(item), nil
		}
	}

	var zero T
	return zero, s.notFound("")
}

// List returns the matching items, newest first, paginated by filter
func (s *InMemoryStore[T]) List(_ context.Context, filter *types.QueryFilter, filterFn FilterFunc[T], sortFn SortFunc[T]) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []T{}
	for _, item := range s.items {
		if filterFn == nil || filterFn(item) {
			result = append(result, s.clone(item))
		}
	}

	if sortFn != nil {
		sort.Slice(result, func(i, j int) bool {
			return sortFn(result[i], result[j])
		})
	}

	start := filter.GetOffset()
	if start >= len(result) {
		return []T{}, nil
	}
	end := start + filter.GetLimit()
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], nil
}

// Count returns the total number of items matching the filter
func (s *InMemoryStore[T]) Count(_ context.Context, filterFn FilterFunc[T]) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		if filterFn == nil || filterFn(item) {
			count++
		}
	}

	return count, nil
}

// Update replaces an existing item
func (s *InMemoryStore[T]) Update(_ context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return s.notFound(id)
	}

	s.items[id] = s.clone(item)
	return nil
}

// Apply replaces an item with fn's result under the store lock, so a read
// and the write based on it cannot interleave with another writer
func (s *InMemoryStore[T]) Apply(_ context.Context, id string, fn func(item T) (T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[id]
	if !exists {
		return s.notFound(id)
	}

	updated, err := fn(s.clone(item))
	if err != nil {
		return err
	}
	s.items[id] = s.clone(updated)
	return nil
}

// Clear removes all items from the store
func (s *InMemoryStore[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]T)
}

// matchesActive applies the is_active part of a list filter
func matchesActive(filter *types.QueryFilter, isActive bool) bool {
	return filter == nil || filter.IsActive == nil || *filter.IsActive == isActive
}
