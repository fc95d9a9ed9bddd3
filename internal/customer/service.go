package customer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"QualityStore/internal/auth"
	"QualityStore/internal/session"
)

// bcrypt ignores input past 72 bytes; longer passwords are rejected instead.
const maxPasswordBytes = 72

type Service struct {
	Store    Store
	Tokens   *auth.TokenMaker
	Sessions session.Store
	Log      *zap.Logger
	Now      func() time.Time
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// Profile is the public view of a customer.
type Profile struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func (c Customer) Profile() Profile {
	return Profile{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Customer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = NormalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	switch {
	case in.Name == "":
		return Customer{}, fmt.Errorf("%w: name required", ErrInvalidInput)
	case in.Email == "" || !strings.Contains(in.Email, "@"):
		return Customer{}, fmt.Errorf("%w: valid email required", ErrInvalidInput)
	case in.Password == "":
		return Customer{}, fmt.Errorf("%w: password required", ErrInvalidInput)
	case len(in.Password) > maxPasswordBytes:
		return Customer{}, fmt.Errorf("%w: password longer than %d bytes", ErrInvalidInput, maxPasswordBytes)
	}

	if _, taken, err := s.Store.ByEmail(ctx, in.Email); err != nil {
		return Customer{}, err
	} else if taken {
		return Customer{}, ErrEmailExists
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return Customer{}, err
	}

	c, err := s.Store.Create(ctx, Customer{
		Name:      in.Name,
		Email:     in.Email,
		Hash:      hash,
		Phone:     in.Phone,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return Customer{}, err
	}

	s.log().Info("customer registered", zap.String("customer_id", c.ID))
	return c, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (Customer, auth.Issued, error) {
	c, ok, err := s.Store.ByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return Customer{}, auth.Issued{}, err
	}
	if !ok || !auth.CheckPassword(c.Hash, password) {
		return Customer{}, auth.Issued{}, ErrInvalidCredentials
	}

	iss, err := s.Tokens.NewCustomer(c.ID, c.Email)
	if err != nil {
		return Customer{}, auth.Issued{}, fmt.Errorf("issue token: %w", err)
	}

	if s.Sessions != nil {
		if err := s.Sessions.Record(ctx, session.FromIssued(iss)); err != nil {
			// The token is already valid on its own; a lost side-table entry
			// only hides last_login.
			s.log().Warn("record customer session", zap.Error(err), zap.String("customer_id", c.ID))
		}
	}

	return c, iss, nil
}

func (s *Service) Profile(ctx context.Context, id string) (Profile, error) {
	c, ok, err := s.Store.Get(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	if !ok {
		return Profile{}, ErrNotFound
	}

	p := c.Profile()
	if s.Sessions != nil {
		rec, found, err := s.Sessions.Last(ctx, auth.RoleCustomer, id)
		if err != nil {
			s.log().Warn("read customer session", zap.Error(err), zap.String("customer_id", id))
		} else if found {
			t := rec.IssuedAt
			p.LastLogin = &t
		}
	}
	return p, nil
}

// CustomerExists lets auth.Guard reject tokens of unknown customers.
func (s *Service) CustomerExists(ctx context.Context, id string) (bool, error) {
	_, ok, err := s.Store.Get(ctx, id)
	return ok, err
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) log() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}
