//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QualityStore/internal/auth"
	"QualityStore/internal/cart"
	"QualityStore/internal/catalog"
	"QualityStore/internal/customer"
	"QualityStore/internal/storage"
	"QualityStore/internal/users"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := storage.Open(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, storage.Migrate(ctx, db))
	require.NoError(t, catalog.NewPostgresStore(db).Seed(ctx, catalog.SeedProducts()))
	return db
}

func TestPostgres_Catalog(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	s := catalog.NewPostgresStore(db)

	p, ok, err := s.Get(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2.99, p.Price)

	ps, err := s.List(ctx, catalog.Filter{Search: "APPLE"})
	require.NoError(t, err)
	require.NotEmpty(t, ps)

	phone := fmt.Sprintf("+1%d", time.Now().UnixNano())
	a, err := s.Create(ctx, catalog.Product{Name: "PG Kiwi", Category: "fruits", Price: 0.5, UploadedBy: phone})
	require.NoError(t, err)
	ok, err = s.Delete(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, ok)

	b, err := s.Create(ctx, catalog.Product{Name: "PG Kiwi", Category: "fruits", Price: 0.5, UploadedBy: phone})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	mine, err := s.ListByUploader(ctx, phone)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, b.ID, mine[0].ID)
}

func TestPostgres_CustomersAndCart(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	hash, err := auth.HashPassword("pw")
	require.NoError(t, err)

	cs := customer.NewPostgresStore(db)
	email := fmt.Sprintf("pg_%d@example.com", time.Now().UnixNano())
	c, err := cs.Create(ctx, customer.Customer{Name: "PG", Email: email, Hash: hash, CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	_, err = cs.Create(ctx, customer.Customer{Name: "PG", Email: email, Hash: hash, CreatedAt: time.Now().UTC()})
	require.ErrorIs(t, err, customer.ErrEmailExists)

	svc := &cart.Service{Store: cart.NewPostgresStore(db), Products: catalog.NewPostgresStore(db)}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.Add(ctx, c.ID, "21", 1)
		}()
	}
	wg.Wait()

	require.NoError(t, svc.Add(ctx, c.ID, "1", 3))

	v, err := svc.View(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, v.Cart, 2)
	assert.Equal(t, "21", v.Cart[0].ProductID)
	assert.Equal(t, 15, v.Cart[0].Quantity)
	assert.Equal(t, 98.82, v.Total)

	require.NoError(t, svc.Remove(ctx, c.ID, "21"))
	v, err = svc.View(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 8.97, v.Total)
}

func TestPostgres_Users(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	s := users.NewPostgresStore(db)

	u, err := s.Create(ctx, users.User{Name: "PG User", Email: "pg@example.com", IsOwner: true})
	require.NoError(t, err)

	got, ok, err := s.Get(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, u, got)
}
