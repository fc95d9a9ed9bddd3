package cart

import (
	"context"
	"time"
)

type Entry struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Store holds one ordered entry list per customer.
type Store interface {
	Entries(ctx context.Context, customerID string) ([]Entry, error)
	// Mutate replaces the customer's entries with fn's result. fn sees a
	// private copy and runs atomically with respect to other mutations of the
	// same cart; if it fails nothing is written.
	Mutate(ctx context.Context, customerID string, fn func([]Entry) ([]Entry, error)) error
	Ping(ctx context.Context) error
}

func find(entries []Entry, productID string) int {
	for i, e := range entries {
		if e.ProductID == productID {
			return i
		}
	}
	return -1
}
