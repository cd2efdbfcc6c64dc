package repository

import (
	"context"

	"github.com/MichaelOwusu007/vdlpro/internal/model"
	"github.com/MichaelOwusu007/vdlpro/internal/store"
)

type OrderRepository interface {
	All(ctx context.Context) ([]model.Order, error)
	Save(ctx context.Context, orders []model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
}

type orderRepo struct{ store store.Store }

func NewOrderRepository(s store.Store) OrderRepository { return &orderRepo{store: s} }

func (r *orderRepo) All(ctx context.Context) ([]model.Order, error) {
	return loadCollection[model.Order](ctx, r.store, store.KeyOrders)
}

func (r *orderRepo) Save(ctx context.Context, orders []model.Order) error {
	return saveCollection(ctx, r.store, store.KeyOrders, orders)
}

func (r *orderRepo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	orders, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}
