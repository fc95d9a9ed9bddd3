package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QualityStore/internal/catalog"
	"QualityStore/pkg/kit"
)

// Seeded products: bananas $2.99 (stock 50), apples $4.99 (30), croissants $5.99 (15).
const (
	bananas = "1"
	apples  = "2"
	croiss  = "21"
)

func newTestService() (*Service, *catalog.MemStore) {
	products := catalog.NewMemStore()
	return &Service{Store: NewMemStore(), Products: products}, products
}

func TestService_AddAndViewTotals(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "customer_1", bananas, 3))

	v, err := svc.View(ctx, "customer_1")
	require.NoError(t, err)
	require.Len(t, v.Cart, 1)
	assert.Equal(t, 8.97, v.Total)
	assert.Equal(t, 8.97, v.Cart[0].ItemTotal)
	assert.Equal(t, "Fresh Bananas", v.Cart[0].ProductName)
	assert.Equal(t, 1, v.ItemsCount)

	require.NoError(t, svc.Add(ctx, "customer_1", apples, 2))
	require.NoError(t, svc.Add(ctx, "customer_1", bananas, 1))

	v, err = svc.View(ctx, "customer_1")
	require.NoError(t, err)
	require.Len(t, v.Cart, 2)
	assert.Equal(t, 4, v.Cart[0].Quantity, "add increments existing entry")
	assert.Equal(t, 9.98, v.Cart[1].ItemTotal)
	assert.Equal(t, 21.94, v.Total)
}

func TestService_EmptyCart(t *testing.T) {
	svc, _ := newTestService()

	v, err := svc.View(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, v.Cart)
	assert.NotNil(t, v.Cart)
	assert.Zero(t, v.Total)
	assert.Zero(t, v.ItemsCount)
}

func TestService_AddErrors(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	err := svc.Add(ctx, "c", "missing", 1)
	require.ErrorIs(t, err, catalog.ErrProductNotFound)
	assert.Equal(t, 404, kit.StatusOf(err))

	err = svc.Add(ctx, "c", croiss, 16)
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 400, kit.StatusOf(err))

	require.NoError(t, svc.Add(ctx, "c", croiss, 10))
	err = svc.Add(ctx, "c", croiss, 6)
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), "you already have 10")

	require.NoError(t, svc.Add(ctx, "c", croiss, 5), "exactly stock is allowed")

	require.ErrorIs(t, svc.Add(ctx, "c", bananas, 0), ErrInvalidQuantity)
	require.ErrorIs(t, svc.Add(ctx, "c", bananas, -2), ErrInvalidQuantity)

	v, err := svc.View(ctx, "c")
	require.NoError(t, err)
	require.Len(t, v.Cart, 1)
	assert.Equal(t, 15, v.Cart[0].Quantity, "failed adds leave the cart unchanged")
}

func TestService_Update(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.ErrorIs(t, svc.Update(ctx, "c", bananas, 2), ErrItemNotFound)

	require.NoError(t, svc.Add(ctx, "c", bananas, 1))
	require.NoError(t, svc.Update(ctx, "c", bananas, 7))

	require.ErrorIs(t, svc.Update(ctx, "c", bananas, 51), ErrInsufficientStock)
	require.ErrorIs(t, svc.Update(ctx, "c", "missing", 1), catalog.ErrProductNotFound)
	require.ErrorIs(t, svc.Update(ctx, "c", apples, 1), ErrItemNotFound)
	require.ErrorIs(t, svc.Update(ctx, "c", bananas, 0), ErrInvalidQuantity)

	v, err := svc.View(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, 7, v.Cart[0].Quantity)
	assert.Equal(t, 20.93, v.Total)
}

func TestService_RemoveIsIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, "c", bananas))

	require.NoError(t, svc.Add(ctx, "c", bananas, 1))
	require.NoError(t, svc.Add(ctx, "c", apples, 1))
	require.NoError(t, svc.Remove(ctx, "c", bananas))
	require.NoError(t, svc.Remove(ctx, "c", bananas))

	v, err := svc.View(ctx, "c")
	require.NoError(t, err)
	require.Len(t, v.Cart, 1)
	assert.Equal(t, apples, v.Cart[0].ProductID)
}

func TestService_ViewSkipsDeletedProducts(t *testing.T) {
	svc, products := newTestService()
	ctx := context.Background()

	p, err := products.Create(ctx, catalog.Product{Name: "Mango", Category: "fruits", Price: 1.25, Stock: 5, UploadedBy: "+1"})
	require.NoError(t, err)

	require.NoError(t, svc.Add(ctx, "c", p.ID, 2))
	require.NoError(t, svc.Add(ctx, "c", bananas, 1))

	_, err = products.Delete(ctx, p.ID)
	require.NoError(t, err)

	v, err := svc.View(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, 1, v.ItemsCount)
	assert.Equal(t, 2.99, v.Total)
}

func TestService_ConcurrentAddsDoNotExceedStock(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.Add(ctx, "c", croiss, 1)
		}()
	}
	wg.Wait()

	v, err := svc.View(ctx, "c")
	require.NoError(t, err)
	require.Len(t, v.Cart, 1)
	assert.Equal(t, 15, v.Cart[0].Quantity)
}
