package registry

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemStore keeps the price table in a map guarded by one RWMutex. List and
// Get share the read lock; Create, Update and Delete take the write lock.
type MemStore struct {
	mu sync.RWMutex
	m  map[uuid.UUID]Price
}

func NewMemStore() *MemStore {
	return &MemStore{m: map[uuid.UUID]Price{}}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List() []Price {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Price, 0, len(s.m))
	for _, p := range s.m {
		out = append(out, p)
	}
	return out
}

func (s *MemStore) Create(id uuid.UUID, p Price) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = p
}

func (s *MemStore) Get(id uuid.UUID) (Price, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.m[id]
	return p, ok
}

func (s *MemStore) Update(id uuid.UUID, p Price) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.m[id]; !ok {
		return false
	}
	s.m[id] = p
	return true
}

func (s *MemStore) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.m[id]; !ok {
		return false
	}
	delete(s.m, id)
	return true
}
