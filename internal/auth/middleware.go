package auth

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"QualityStore/pkg/kit"
)

var (
	ErrMissingToken  = kit.Unauthorized("missing token")
	ErrNotOwner      = kit.Unauthorized("not an authorized owner")
	ErrNotCustomer   = kit.Unauthorized("invalid customer token")
	ErrUnknownCaller = kit.Unauthorized("no authenticated caller")
)

type ctxKey string

const identityKey ctxKey = "identity"

// Identity is the verified caller attached to the request context.
type Identity struct {
	Role       string
	CustomerID string
	Email      string
	Phone      string
	TokenID    string
}

func (i Identity) Subject() string {
	if i.Role == RoleOwner {
		return i.Phone
	}
	return i.CustomerID
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// CustomerLookup confirms that a customer id carried by a token still exists.
type CustomerLookup interface {
	CustomerExists(ctx context.Context, id string) (bool, error)
}

// Guard verifies bearer tokens and dispatches them to the customer or owner
// identity according to the role claim.
type Guard struct {
	Tokens    *TokenMaker
	Owners    *PhoneAllowlist
	Customers CustomerLookup
	Log       *zap.Logger
}

func (g *Guard) VerifyOwner(token string) (Identity, error) {
	c, err := g.Tokens.Parse(token)
	if err != nil {
		return Identity{}, err
	}
	if c.Role != RoleOwner || !g.Owners.Contains(c.PhoneNumber) {
		return Identity{}, ErrNotOwner
	}
	return Identity{Role: RoleOwner, Phone: c.PhoneNumber, TokenID: c.ID}, nil
}

func (g *Guard) VerifyCustomer(ctx context.Context, token string) (Identity, error) {
	c, err := g.Tokens.Parse(token)
	if err != nil {
		return Identity{}, err
	}
	if c.Role != RoleCustomer || c.CustomerID == "" {
		return Identity{}, ErrNotCustomer
	}
	if g.Customers != nil {
		ok, err := g.Customers.CustomerExists(ctx, c.CustomerID)
		if err != nil {
			return Identity{}, err
		}
		if !ok {
			return Identity{}, ErrNotCustomer
		}
	}
	return Identity{Role: RoleCustomer, CustomerID: c.CustomerID, Email: c.Email, TokenID: c.ID}, nil
}

func (g *Guard) RequireOwner(next http.Handler) http.Handler {
	return g.require(func(r *http.Request, tok string) (Identity, error) {
		return g.VerifyOwner(tok)
	}, next)
}

func (g *Guard) RequireCustomer(next http.Handler) http.Handler {
	return g.require(func(r *http.Request, tok string) (Identity, error) {
		return g.VerifyCustomer(r.Context(), tok)
	}, next)
}

func (g *Guard) require(verify func(*http.Request, string) (Identity, error), next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok, ok := kit.BearerToken(r)
		if !ok {
			kit.Fail(w, r, g.Log, ErrMissingToken)
			return
		}

		id, err := verify(r, tok)
		if err != nil {
			kit.Fail(w, r, g.Log, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}
