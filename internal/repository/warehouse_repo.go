package repository

import (
	"context"

	"github.com/MichaelOwusu007/vdlpro/internal/model"
	"github.com/MichaelOwusu007/vdlpro/internal/store"
)

type WarehouseRepository interface {
	All(ctx context.Context) ([]model.Warehouse, error)
	Save(ctx context.Context, warehouses []model.Warehouse) error
	FindByID(ctx context.Context, id string) (*model.Warehouse, error)
}

type warehouseRepo struct{ store store.Store }

func NewWarehouseRepository(s store.Store) WarehouseRepository { return &warehouseRepo{store: s} }

func (r *warehouseRepo) All(ctx context.Context) ([]model.Warehouse, error) {
	return loadCollection[model.Warehouse](ctx, r.store, store.KeyWarehouse)
}

func (r *warehouseRepo) Save(ctx context.Context, warehouses []model.Warehouse) error {
	return saveCollection(ctx, r.store, store.KeyWarehouse, warehouses)
}

func (r *warehouseRepo) FindByID(ctx context.Context, id string) (*model.Warehouse, error) {
	warehouses, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range warehouses {
		if warehouses[i].ID == id {
			return &warehouses[i], nil
		}
	}
	return nil, nil
}
