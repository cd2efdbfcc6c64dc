package repository

import (
	"context"
	"testing"

	"github.com/MichaelOwusu007/vdlpro/internal/model"
	"github.com/MichaelOwusu007/vdlpro/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionRoundTrip(t *testing.T) {
	kv := store.NewMemoryStore()
	repo := NewProductRepository(kv)
	ctx := context.Background()

	products := []model.Product{
		{ID: "P1", SKU: "SKU1", Name: "Product 1", Price: decimal.NewFromInt(10)},
		{ID: "P2", SKU: "SKU2", Name: "Product 2", Price: decimal.RequireFromString("19.99")},
	}
	require.NoError(t, repo.Save(ctx, products))

	loaded, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "P1", loaded[0].ID)
	assert.True(t, loaded[1].Price.Equal(decimal.RequireFromString("19.99")))
}

func TestMissingCollectionLoadsEmpty(t *testing.T) {
	repo := NewOrderRepository(store.NewMemoryStore())

	orders, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

// A corrupt payload degrades to an empty collection rather than an error.
func TestCorruptPayloadLoadsEmpty(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, store.KeyStock, []byte("{not json")))

	repo := NewStockRepository(kv)
	stock, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, stock)
}

func TestTransferPrependIsNewestFirst(t *testing.T) {
	repo := NewTransferRepository(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Prepend(ctx, model.TransferRecord{ID: "TR-1"}))
	require.NoError(t, repo.Prepend(ctx, model.TransferRecord{ID: "TR-2"}))

	transfers, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	assert.Equal(t, "TR-2", transfers[0].ID)
	assert.Equal(t, "TR-1", transfers[1].ID)
}

func TestActivityStreamsAreIndependent(t *testing.T) {
	kv := store.NewMemoryStore()
	repo := NewActivityRepository(kv)
	ctx := context.Background()

	require.NoError(t, repo.Push(ctx, StreamInventory, model.ActivityEntry{ID: "ACT-1", Action: "TRANSFER"}))
	require.NoError(t, repo.Push(ctx, StreamOrders, model.ActivityEntry{ID: "ACT-2", Action: "Created order 1001"}))

	inv, err := repo.Entries(ctx, StreamInventory)
	require.NoError(t, err)
	orders, err := repo.Entries(ctx, StreamOrders)
	require.NoError(t, err)
	shipping, err := repo.Entries(ctx, StreamShipping)
	require.NoError(t, err)

	assert.Len(t, inv, 1)
	assert.Len(t, orders, 1)
	assert.Empty(t, shipping)
}
