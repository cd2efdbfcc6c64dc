package model

import "time"

// StockItem is one stock line — conceptually one row per
// (warehouseId, sku, variantId). Quantity is never negative.
type StockItem struct {
	ID           string     `json:"id"`
	ProductID    string     `json:"productId"`
	SKU          string     `json:"sku"`
	Name         string     `json:"name,omitempty"`
	WarehouseID  string     `json:"warehouseId"`
	VariantID    *string    `json:"variantId,omitempty"`
	Quantity     int        `json:"quantity"`
	ReorderPoint int        `json:"reorderPoint"`
	BatchLot     string     `json:"batchLot,omitempty"`
	LastUpdated  *time.Time `json:"lastUpdated,omitempty"`
	Note         string     `json:"note,omitempty"`
}

type TransferStatus string

const (
	TransferPending   TransferStatus = "pending"
	TransferCompleted TransferStatus = "completed"
	TransferCancelled TransferStatus = "cancelled"
)

// TransferRecord documents a stock move between two warehouses.
// Immutable once completed, except for the status field.
type TransferRecord struct {
	ID              string         `json:"id"`
	ProductID       string         `json:"productId"`
	SKU             string         `json:"sku,omitempty"`
	VariantID       *string        `json:"variantId,omitempty"`
	FromWarehouseID string         `json:"fromWarehouseId"`
	ToWarehouseID   string         `json:"toWarehouseId"`
	Quantity        int            `json:"quantity"`
	Status          TransferStatus `json:"status"`
	Note            string         `json:"note,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}
