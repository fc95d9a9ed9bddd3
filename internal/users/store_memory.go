package users

import (
	"context"
	"strconv"
	"sync"
)

type MemStore struct {
	mu  sync.RWMutex
	m   map[string]User
	seq int
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]User)}
}

func (s *MemStore) Ping(context.Context) error { return nil }

func (s *MemStore) Create(_ context.Context, u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	u.ID = IDPrefix + strconv.Itoa(s.seq)
	s.m[u.ID] = u
	return u, nil
}

func (s *MemStore) Get(_ context.Context, id string) (User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.m[id]
	return u, ok, nil
}
