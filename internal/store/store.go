// Package store is the ledger persistence layer. Each ledger is one
// JSON-encoded collection under a fixed key, loaded whole and written back
// whole — there is no per-row access, no locking, and no conflict detection:
// last writer wins.
package store

import (
	"context"
	"errors"
)

// Fixed keys for the persisted collections.
const (
	KeyProducts  = "wms:products"
	KeyWarehouse = "wms:warehouses"
	KeyStock     = "wms:stock"
	KeyTransfers = "wms:transfers"
	KeyOrders    = "wms:orders"
	KeyShipments = "wms:shipments"

	KeyInventoryLog = "wms:activity:inventory"
	KeyOrderLog     = "wms:activity:orders"
	KeyShippingLog  = "wms:activity:shipping"
	KeyGeneralLog   = "wms:activity:general"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("store: key not found")

// Store is a fixed-key document store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
