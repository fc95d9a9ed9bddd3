package customer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"QualityStore/internal/auth"
	"QualityStore/internal/session"
	"QualityStore/pkg/kit"
)

func newTestService() *Service {
	return &Service{
		Store:    NewMemStore(),
		Tokens:   auth.NewTokenMaker("test-secret"),
		Sessions: session.NewMemStore(),
		Log:      zap.NewNop(),
	}
}

func TestService_RegisterAssignsSequentialIDs(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, err := svc.Register(ctx, RegisterInput{Name: "Ann", Email: "Ann@Example.com ", Password: "pw123456", Phone: "+1"})
	require.NoError(t, err)
	assert.Equal(t, "customer_1", a.ID)
	assert.Equal(t, "ann@example.com", a.Email)
	assert.NotEqual(t, []byte("pw123456"), a.Hash)
	assert.False(t, a.CreatedAt.IsZero())

	b, err := svc.Register(ctx, RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, "customer_2", b.ID)
}

func TestService_RegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "Imposter", Email: "ANN@example.com", Password: "other"})
	require.ErrorIs(t, err, ErrEmailExists)
	assert.Equal(t, 400, kit.StatusOf(err))
}

func TestService_RegisterValidation(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{name: "no name", in: RegisterInput{Email: "a@b.c", Password: "pw"}},
		{name: "no email", in: RegisterInput{Name: "a", Password: "pw"}},
		{name: "bad email", in: RegisterInput{Name: "a", Email: "nope", Password: "pw"}},
		{name: "no password", in: RegisterInput{Name: "a", Email: "a@b.c"}},
		{name: "long password", in: RegisterInput{Name: "a", Email: "a@b.c", Password: strings.Repeat("x", 73)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.in)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_LoginAndProfile(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	c, err := svc.Register(ctx, RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "secret-pw", Phone: "+852"})
	require.NoError(t, err)

	p, err := svc.Profile(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, p.LastLogin, "no session before login")

	got, iss, err := svc.Login(ctx, " ANN@example.com", "secret-pw")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	claims, err := svc.Tokens.Parse(iss.Token)
	require.NoError(t, err)
	assert.Equal(t, c.ID, claims.CustomerID)
	assert.Equal(t, auth.RoleCustomer, claims.Role)

	p, err = svc.Profile(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "+852", p.Phone)
	require.NotNil(t, p.LastLogin)
	assert.True(t, p.LastLogin.Equal(iss.IssuedAt))

	ok, err := svc.CustomerExists(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_LoginFailures(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "secret-pw"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ann@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret-pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 401, kit.StatusOf(err))

	_, err = svc.Profile(ctx, "customer_42")
	require.ErrorIs(t, err, ErrNotFound)
}
