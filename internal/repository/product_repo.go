package repository

import (
	"context"

	"github.com/MichaelOwusu007/vdlpro/internal/model"
	"github.com/MichaelOwusu007/vdlpro/internal/store"
)

type ProductRepository interface {
	All(ctx context.Context) ([]model.Product, error)
	Save(ctx context.Context, products []model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
}

type productRepo struct{ store store.Store }

func NewProductRepository(s store.Store) ProductRepository { return &productRepo{store: s} }

func (r *productRepo) All(ctx context.Context) ([]model.Product, error) {
	return loadCollection[model.Product](ctx, r.store, store.KeyProducts)
}

func (r *productRepo) Save(ctx context.Context, products []model.Product) error {
	return saveCollection(ctx, r.store, store.KeyProducts, products)
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	products, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}
