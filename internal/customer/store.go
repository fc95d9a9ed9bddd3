package customer

import (
	"context"
	"time"

	"QualityStore/pkg/kit"
)

const IDPrefix = "customer_"

var (
	ErrEmailExists        = kit.BadRequest("email already registered")
	ErrInvalidCredentials = kit.Unauthorized("invalid email or password")
	ErrInvalidInput       = kit.BadRequest("invalid registration")
	ErrNotFound           = kit.NotFound("customer not found")
)

type Customer struct {
	ID        string
	Name      string
	Email     string
	Hash      []byte
	Phone     string
	CreatedAt time.Time
}

type Store interface {
	// Create assigns the next sequential id and fails with ErrEmailExists
	// when the email is taken.
	Create(ctx context.Context, c Customer) (Customer, error)
	Get(ctx context.Context, id string) (Customer, bool, error)
	ByEmail(ctx context.Context, email string) (Customer, bool, error)
	Ping(ctx context.Context) error
}
