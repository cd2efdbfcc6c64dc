package dto

import "github.com/shopspring/decimal"

// TransferRequest asks the transfer engine to move quantity units of sku
// between two warehouses. Quantity bounds are checked by the engine itself so
// that a non-positive value surfaces as its own error, not a binding failure.
type TransferRequest struct {
	FromWarehouseID string `json:"fromWarehouseId" validate:"required"`
	ToWarehouseID   string `json:"toWarehouseId" validate:"required"`
	SKU             string `json:"sku" validate:"required"`
	Quantity        int    `json:"quantity"`
	Note            string `json:"note"`
}

type CreateStockItemRequest struct {
	ProductID    string  `json:"productId" validate:"required"`
	SKU          string  `json:"sku" validate:"required"`
	Name         string  `json:"name"`
	WarehouseID  string  `json:"warehouseId" validate:"required"`
	VariantID    *string `json:"variantId"`
	Quantity     int     `json:"quantity" validate:"min=0"`
	ReorderPoint int     `json:"reorderPoint" validate:"min=0"`
	BatchLot     string  `json:"batchLot"`
	Note         string  `json:"note"`
}

// AdjustStockRequest applies a signed delta to one stock line.
type AdjustStockRequest struct {
	Change int `json:"change" validate:"required"`
}

type CapacityResponse struct {
	WarehouseID string `json:"warehouseId"`
	Capacity    int    `json:"capacity"`
	Used        int    `json:"used"`
	// Left is null when the warehouse has unlimited capacity.
	Left      *int `json:"left"`
	Unlimited bool `json:"unlimited"`
}

type WarehouseValue struct {
	WarehouseID string          `json:"warehouseId"`
	Value       decimal.Decimal `json:"value"`
}

type InventoryValueResponse struct {
	Warehouses []WarehouseValue `json:"warehouses"`
	Total      decimal.Decimal  `json:"total"`
}
