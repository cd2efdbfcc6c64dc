package repository

import (
	"context"

	"github.com/MichaelOwusu007/vdlpro/internal/model"
	"github.com/MichaelOwusu007/vdlpro/internal/store"
)

// ActivityStream names one of the four persisted log streams.
type ActivityStream string

const (
	StreamInventory ActivityStream = store.KeyInventoryLog
	StreamOrders    ActivityStream = store.KeyOrderLog
	StreamShipping  ActivityStream = store.KeyShippingLog
	StreamGeneral   ActivityStream = store.KeyGeneralLog
)

// shippingLogCap bounds the shipping stream; the other streams are unbounded.
const shippingLogCap = 200

type ActivityRepository interface {
	Entries(ctx context.Context, stream ActivityStream) ([]model.ActivityEntry, error)
	Push(ctx context.Context, stream ActivityStream, entry model.ActivityEntry) error
}

type activityRepo struct{ store store.Store }

func NewActivityRepository(s store.Store) ActivityRepository { return &activityRepo{store: s} }

func (r *activityRepo) Entries(ctx context.Context, stream ActivityStream) ([]model.ActivityEntry, error) {
	return loadCollection[model.ActivityEntry](ctx, r.store, string(stream))
}

// Push prepends the entry (streams are newest-first) and trims the shipping
// stream to its cap.
func (r *activityRepo) Push(ctx context.Context, stream ActivityStream, entry model.ActivityEntry) error {
	entries, err := r.Entries(ctx, stream)
	if err != nil {
		return err
	}
	entries = append([]model.ActivityEntry{entry}, entries...)
	if stream == StreamShipping && len(entries) > shippingLogCap {
		entries = entries[:shippingLogCap]
	}
	return saveCollection(ctx, r.store, string(stream), entries)
}
