package session

import (
	"context"
	"sync"
	"time"
)

type MemStore struct {
	mu  sync.RWMutex
	m   map[string]Record
	now func() time.Time
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]Record), now: time.Now}
}

func (s *MemStore) Ping(context.Context) error { return nil }

func (s *MemStore) Record(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key(rec.Role, rec.Subject)] = rec
	return nil
}

func (s *MemStore) Last(_ context.Context, role, subject string) (Record, bool, error) {
	k := key(role, subject)

	s.mu.RLock()
	rec, ok := s.m[k]
	s.mu.RUnlock()

	if !ok {
		return Record{}, false, nil
	}
	if !rec.ExpiresAt.IsZero() && !s.now().Before(rec.ExpiresAt) {
		s.mu.Lock()
		delete(s.m, k)
		s.mu.Unlock()
		return Record{}, false, nil
	}
	return rec, true, nil
}
