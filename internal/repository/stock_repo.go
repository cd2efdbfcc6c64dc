package repository

import (
	"context"

	"github.com/MichaelOwusu007/vdlpro/internal/model"
	"github.com/MichaelOwusu007/vdlpro/internal/store"
)

type StockRepository interface {
	All(ctx context.Context) ([]model.StockItem, error)
	// Save writes the full updated collection in one call — both halves of a
	// transfer land in a single write, or not at all.
	Save(ctx context.Context, items []model.StockItem) error
}

type stockRepo struct{ store store.Store }

func NewStockRepository(s store.Store) StockRepository { return &stockRepo{store: s} }

func (r *stockRepo) All(ctx context.Context) ([]model.StockItem, error) {
	return loadCollection[model.StockItem](ctx, r.store, store.KeyStock)
}

func (r *stockRepo) Save(ctx context.Context, items []model.StockItem) error {
	return saveCollection(ctx, r.store, store.KeyStock, items)
}
