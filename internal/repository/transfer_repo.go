package repository

import (
	"context"

	"github.com/MichaelOwusu007/vdlpro/internal/model"
	"github.com/MichaelOwusu007/vdlpro/internal/store"
)

type TransferRepository interface {
	All(ctx context.Context) ([]model.TransferRecord, error)
	Save(ctx context.Context, records []model.TransferRecord) error
	// Prepend inserts a record at the head — transfer history is newest-first.
	Prepend(ctx context.Context, record model.TransferRecord) error
}

type transferRepo struct{ store store.Store }

func NewTransferRepository(s store.Store) TransferRepository { return &transferRepo{store: s} }

func (r *transferRepo) All(ctx context.Context) ([]model.TransferRecord, error) {
	return loadCollection[model.TransferRecord](ctx, r.store, store.KeyTransfers)
}

func (r *transferRepo) Save(ctx context.Context, records []model.TransferRecord) error {
	return saveCollection(ctx, r.store, store.KeyTransfers, records)
}

func (r *transferRepo) Prepend(ctx context.Context, record model.TransferRecord) error {
	records, err := r.All(ctx)
	if err != nil {
		return err
	}
	records = append([]model.TransferRecord{record}, records...)
	return r.Save(ctx, records)
}
