package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_Routes(t *testing.T) {
	h := (&Server{Store: NewMemStore(), Log: zap.NewNop()}).Routes()

	rec := get(t, h, "/categories")
	require.Equal(t, http.StatusOK, rec.Code)
	var cats categoriesResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cats))
	assert.Len(t, cats.Categories, 10)

	rec = get(t, h, "/products?search=milk&category=dairy")
	require.Equal(t, http.StatusOK, rec.Code)
	var list productsResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Products, 1)
	assert.Equal(t, "14", list.Products[0].ID)

	rec = get(t, h, "/products/2")
	require.Equal(t, http.StatusOK, rec.Code)
	var p Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Organic Apples", p.Name)
	assert.InDelta(t, 4.99, p.Price, 1e-9)

	rec = get(t, h, "/products/999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_EmptyListIsArray(t *testing.T) {
	h := (&Server{Store: NewMemStore()}).Routes()

	rec := get(t, h, "/products?search=zzz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"products":[]}`, rec.Body.String())
}
