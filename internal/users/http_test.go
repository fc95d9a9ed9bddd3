package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func post(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec, out
}

func TestServer_Create(t *testing.T) {
	store := NewMemStore()
	h := (&Server{Store: store, Log: zap.NewNop()}).Routes()

	rec, out := post(t, h, `{"name":"Ann","email":"ann@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user_1", out["user_id"])
	assert.Equal(t, "User created successfully", out["message"])

	rec, out = post(t, h, `{"name":"Bob","email":"bob@example.com","is_owner":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user_2", out["user_id"])

	u, ok, err := store.Get(context.Background(), "user_2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, User{ID: "user_2", Name: "Bob", Email: "bob@example.com", IsOwner: true}, u)
}

func TestServer_CreateIgnoresExtraFields(t *testing.T) {
	store := NewMemStore()
	h := (&Server{Store: store, Log: zap.NewNop()}).Routes()

	rec, out := post(t, h, `{"name":"Test User","email":"test@example.com","phone":"+1234567890","address":"123 Test St"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user_1", out["user_id"])

	u, ok, err := store.Get(context.Background(), "user_1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "test@example.com", u.Email)
	assert.False(t, u.IsOwner)
}

func TestServer_CreateRejects(t *testing.T) {
	h := (&Server{Store: NewMemStore(), Log: zap.NewNop()}).Routes()

	for name, body := range map[string]string{
		"missing name": `{"email":"x@example.com"}`,
		"blank email":  `{"name":"X","email":"  "}`,
		"bad json":     `{"name":`,
	} {
		t.Run(name, func(t *testing.T) {
			rec, out := post(t, h, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, out["error"])
		})
	}
}
