package services

import (
	"slices"
	"sync"
	"sync/atomic"
)

// entityStore is the in-memory mirror behind one entity type. It keeps the
// active set and the recycle bin as separately ordered slices guarded by a
// single RWMutex. Reads never touch the database; every successful write
// goes to the repository first and is applied here afterwards.
//
// An item is in exactly one of the two sets at any time.
type entityStore[T any] struct {
	mu     sync.RWMutex
	loaded atomic.Bool

	id         func(T) string
	cmpActive  func(a, b T) int
	cmpDeleted func(a, b T) int
	active     []T
	deleted    []T
}

func newEntityStore[T any](id func(T) string, cmpActive, cmpDeleted func(a, b T) int) *entityStore[T] {
	return &entityStore[T]{
		id:         id,
		cmpActive:  cmpActive,
		cmpDeleted: cmpDeleted,
	}
}

// Replace swaps in a full snapshot from the repository and marks the store
// loaded.
func (s *entityStore[T]) Replace(active, deleted []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = slices.Clone(active)
	s.deleted = slices.Clone(deleted)
	slices.SortStableFunc(s.active, s.cmpActive)
	slices.SortStableFunc(s.deleted, s.cmpDeleted)
	s.loaded.Store(true)
}

// Loaded reports whether an initial snapshot has been applied. The sweeper
// skips stores that are still loading.
func (s *entityStore[T]) Loaded() bool {
	return s.loaded.Load()
}

// Active returns a copy of the active set in order.
func (s *entityStore[T]) Active() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.active)
}

// Deleted returns a copy of the recycle bin in order.
func (s *entityStore[T]) Deleted() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.deleted)
}

// GetActive looks up an item in the active set.
func (s *entityStore[T]) GetActive(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.find(s.active, id)
}

// GetDeleted looks up an item in the recycle bin.
func (s *entityStore[T]) GetDeleted(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.find(s.deleted, id)
}

// HasActive reports membership in the active set.
func (s *entityStore[T]) HasActive(id string) bool {
	_, ok := s.GetActive(id)
	return ok
}

// HasDeleted reports membership in the recycle bin.
func (s *entityStore[T]) HasDeleted(id string) bool {
	_, ok := s.GetDeleted(id)
	return ok
}

// InsertActive adds a freshly created item to the active set.
func (s *entityStore[T]) InsertActive(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = append(s.active, item)
	slices.SortStableFunc(s.active, s.cmpActive)
}

// ReplaceActive overwrites an active item in place, keyed by ID.
func (s *entityStore[T]) ReplaceActive(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id(item)
	for i := range s.active {
		if s.id(s.active[i]) == id {
			s.active[i] = item
			slices.SortStableFunc(s.active, s.cmpActive)
			return true
		}
	}
	return false
}

// MoveToDeleted moves an item from the active set to the recycle bin,
// applying mutate (typically setting the deletion timestamp) on the way.
func (s *entityStore[T]) MoveToDeleted(id string, mutate func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.active {
		if s.id(s.active[i]) == id {
			item := s.active[i]
			s.active = slices.Delete(s.active, i, i+1)
			mutate(&item)
			s.deleted = append(s.deleted, item)
			slices.SortStableFunc(s.deleted, s.cmpDeleted)
			return true
		}
	}
	return false
}

// MoveToActive moves an item from the recycle bin back to the active set,
// applying mutate (typically clearing the deletion timestamp) on the way.
func (s *entityStore[T]) MoveToActive(id string, mutate func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.deleted {
		if s.id(s.deleted[i]) == id {
			item := s.deleted[i]
			s.deleted = slices.Delete(s.deleted, i, i+1)
			mutate(&item)
			s.active = append(s.active, item)
			slices.SortStableFunc(s.active, s.cmpActive)
			return true
		}
	}
	return false
}

// RemoveDeleted drops an item from the recycle bin after a permanent delete.
func (s *entityStore[T]) RemoveDeleted(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.deleted {
		if s.id(s.deleted[i]) == id {
			s.deleted = slices.Delete(s.deleted, i, i+1)
			return true
		}
	}
	return false
}

// RemoveDeletedWhere drops every recycle bin item matching the predicate and
// returns how many were removed. Used when a hard delete cascades.
func (s *entityStore[T]) RemoveDeletedWhere(pred func(T) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.deleted)
	s.deleted = slices.DeleteFunc(s.deleted, pred)
	return before - len(s.deleted)
}

func (s *entityStore[T]) find(items []T, id string) (T, bool) {
	for i := range items {
		if s.id(items[i]) == id {
			return items[i], true
		}
	}
	var zero T
	return zero, false
}
