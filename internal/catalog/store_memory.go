package catalog

import (
	"context"
	"strconv"
	"sync"
)

// MemStore keeps products in insertion order: the seed first, owner uploads
// appended after it.
type MemStore struct {
	mu       sync.RWMutex
	products []Product
	nextSeq  int
}

func NewMemStore() *MemStore {
	return NewMemStoreWith(SeedProducts())
}

func NewMemStoreWith(products []Product) *MemStore {
	s := &MemStore{products: append([]Product(nil), products...)}
	for _, p := range s.products {
		if n, ok := ownerSeq(p.ID); ok && n > s.nextSeq {
			s.nextSeq = n
		}
	}
	return s
}

func (s *MemStore) Ping(context.Context) error { return nil }

func (s *MemStore) List(_ context.Context, f Filter) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) Get(_ context.Context, id string) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.index(id); i >= 0 {
		return s.products[i], true, nil
	}
	return Product{}, false, nil
}

func (s *MemStore) Create(_ context.Context, p Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	p.ID = OwnerIDPrefix + strconv.Itoa(s.nextSeq)
	p.OwnerUploaded = true

	s.products = append(s.products, p)
	return p, nil
}

func (s *MemStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return true, nil
}

func (s *MemStore) ListByUploader(_ context.Context, phone string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range s.products {
		if p.OwnerUploaded && p.UploadedBy == phone {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) index(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func ownerSeq(id string) (int, bool) {
	if len(id) <= len(OwnerIDPrefix) || id[:len(OwnerIDPrefix)] != OwnerIDPrefix {
		return 0, false
	}
	n, err := strconv.Atoi(id[len(OwnerIDPrefix):])
	return n, err == nil
}
