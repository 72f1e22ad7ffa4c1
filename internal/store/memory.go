package store

import (
	"context"
	"sync"

	"github.com/fruitstand/backend/internal/model"
)

// MemoryStore is an in-memory Store for tests and ephemeral runs. It
// deep-copies on both Load and Flush so callers never share state with
// the backing map.
type MemoryStore struct {
	mu       sync.Mutex
	recipes  Collection
	failNext error
}

var _ Store = (*MemoryStore)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{recipes: Collection{}}
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context) (Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	return cloneCollection(s.recipes), nil
}

// Flush implements Store.
func (s *MemoryStore) Flush(_ context.Context, c Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	s.recipes = cloneCollection(c)
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error { return nil }

// FailNext makes the next Load or Flush return err, for exercising
// storage failure paths in tests.
func (s *MemoryStore) FailNext(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = model.WrapError(model.ErrCodeStorage, "memory store", err)
}

func (s *MemoryStore) takeFailure() error {
	err := s.failNext
	s.failNext = nil
	return err
}

func cloneCollection(c Collection) Collection {
	out := make(Collection, len(c))
	for id, r := range c {
		out[id] = r.Clone()
	}
	return out
}
