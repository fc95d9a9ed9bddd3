package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"QualityStore/pkg/kit"
)

const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"

	TokenTTL = 24 * time.Hour
)

var (
	ErrTokenExpired = kit.Unauthorized("token expired")
	ErrTokenInvalid = kit.Unauthorized("invalid token")
)

type TokenMaker struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenMaker(secret string) *TokenMaker {
	return &TokenMaker{
		secret: []byte(secret),
		issuer: "quality-store",
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// WithClock returns a copy of t that stamps and validates tokens against now.
func (t *TokenMaker) WithClock(now func() time.Time) *TokenMaker {
	c := *t
	c.now = now
	return &c
}

type Claims struct {
	Role        string `json:"role"`
	CustomerID  string `json:"customer_id,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	IsOwner     bool   `json:"is_owner,omitempty"`
	IsCustomer  bool   `json:"is_customer,omitempty"`
	jwt.RegisteredClaims
}

// Issued is a freshly signed token together with the metadata recorded in the
// session side-table.
type Issued struct {
	Token     string
	ID        string
	Subject   string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (t *TokenMaker) NewCustomer(customerID, email string) (Issued, error) {
	return t.issue(Claims{
		Role:       RoleCustomer,
		CustomerID: customerID,
		Email:      email,
		IsCustomer: true,
	}, customerID)
}

func (t *TokenMaker) NewOwner(phone string) (Issued, error) {
	return t.issue(Claims{
		Role:        RoleOwner,
		PhoneNumber: phone,
		IsOwner:     true,
	}, phone)
}

func (t *TokenMaker) issue(claims Claims, subject string) (Issued, error) {
	now := t.now()
	exp := now.Add(t.ttl)

	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		Issuer:    t.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return Issued{}, err
	}

	return Issued{
		Token:     signed,
		ID:        claims.ID,
		Subject:   subject,
		Role:      claims.Role,
		IssuedAt:  now,
		ExpiresAt: exp,
	}, nil
}

// Parse validates signature, algorithm and expiry. Failures collapse into
// ErrTokenExpired or ErrTokenInvalid.
func (t *TokenMaker) Parse(tokenStr string) (Claims, error) {
	var c Claims

	token, err := jwt.ParseWithClaims(tokenStr, &c, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return Claims{}, ErrTokenExpired
	}
	if err != nil || token == nil || !token.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if c.Issuer != "" && c.Issuer != t.issuer {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
