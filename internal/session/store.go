// Package session keeps the "last issued token" side-table. Tokens are
// verified statelessly; these records only answer when a subject last logged in.
package session

import (
	"context"
	"time"

	"QualityStore/internal/auth"
)

type Record struct {
	Subject   string    `json:"subject"`
	Role      string    `json:"role"`
	TokenID   string    `json:"token_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromIssued(iss auth.Issued) Record {
	return Record{
		Subject:   iss.Subject,
		Role:      iss.Role,
		TokenID:   iss.ID,
		IssuedAt:  iss.IssuedAt,
		ExpiresAt: iss.ExpiresAt,
	}
}

type Store interface {
	Record(ctx context.Context, rec Record) error
	Last(ctx context.Context, role, subject string) (Record, bool, error)
	Ping(ctx context.Context) error
}

func key(role, subject string) string {
	return role + ":" + subject
}
