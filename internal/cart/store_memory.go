package cart

import (
	"context"
	"sync"
)

type MemStore struct {
	mu sync.Mutex
	m  map[string][]Entry
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string][]Entry)}
}

func (s *MemStore) Ping(context.Context) error { return nil }

func (s *MemStore) Entries(_ context.Context, customerID string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.m[customerID]...), nil
}

func (s *MemStore) Mutate(_ context.Context, customerID string, fn func([]Entry) ([]Entry, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(append([]Entry(nil), s.m[customerID]...))
	if err != nil {
		return err
	}
	if len(next) == 0 {
		delete(s.m, customerID)
		return nil
	}
	s.m[customerID] = next
	return nil
}
