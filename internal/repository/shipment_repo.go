package repository

import (
	"context"

	"github.com/MichaelOwusu007/vdlpro/internal/model"
	"github.com/MichaelOwusu007/vdlpro/internal/store"
)

type ShipmentRepository interface {
	All(ctx context.Context) ([]model.Shipment, error)
	Save(ctx context.Context, shipments []model.Shipment) error
	FindByID(ctx context.Context, id string) (*model.Shipment, error)
}

type shipmentRepo struct{ store store.Store }

func NewShipmentRepository(s store.Store) ShipmentRepository { return &shipmentRepo{store: s} }

func (r *shipmentRepo) All(ctx context.Context) ([]model.Shipment, error) {
	return loadCollection[model.Shipment](ctx, r.store, store.KeyShipments)
}

func (r *shipmentRepo) Save(ctx context.Context, shipments []model.Shipment) error {
	return saveCollection(ctx, r.store, store.KeyShipments, shipments)
}

func (r *shipmentRepo) FindByID(ctx context.Context, id string) (*model.Shipment, error) {
	shipments, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range shipments {
		if shipments[i].ID == id {
			return &shipments[i], nil
		}
	}
	return nil, nil
}
