package customer

import (
	"context"
	"strconv"
	"sync"
)

type MemStore struct {
	mu      sync.RWMutex
	byID    map[string]Customer
	byEmail map[string]string
	seq     int
}

func NewMemStore() *MemStore {
	return &MemStore{
		byID:    make(map[string]Customer),
		byEmail: make(map[string]string),
	}
}

func (s *MemStore) Ping(context.Context) error { return nil }

func (s *MemStore) Create(_ context.Context, c Customer) (Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[c.Email]; ok {
		return Customer{}, ErrEmailExists
	}

	s.seq++
	c.ID = IDPrefix + strconv.Itoa(s.seq)
	s.byID[c.ID] = c
	s.byEmail[c.Email] = c.ID
	return c, nil
}

func (s *MemStore) Get(_ context.Context, id string) (Customer, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	return c, ok, nil
}

func (s *MemStore) ByEmail(_ context.Context, email string) (Customer, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return Customer{}, false, nil
	}
	return s.byID[id], true, nil
}
