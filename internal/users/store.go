// Package users keeps the bare user records created through /api/users.
// They carry no credentials and grant no access.
package users

import (
	"context"
	"fmt"
	"strings"

	"QualityStore/pkg/kit"
)

const IDPrefix = "user_"

var ErrInvalidUser = kit.BadRequest("invalid user")

type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsOwner bool   `json:"is_owner"`
}

type Store interface {
	// Create stores u under the next "user_N" id.
	Create(ctx context.Context, u User) (User, error)
	Get(ctx context.Context, id string) (User, bool, error)
	Ping(ctx context.Context) error
}

func Validate(u User) (User, error) {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)

	switch {
	case u.Name == "":
		return User{}, fmt.Errorf("%w: name required", ErrInvalidUser)
	case u.Email == "":
		return User{}, fmt.Errorf("%w: email required", ErrInvalidUser)
	}
	return u, nil
}
