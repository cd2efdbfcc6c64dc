package dto

import (
	"github.com/shopspring/decimal"

	"github.com/MichaelOwusu007/vdlpro/internal/model"
)

type OrderLineRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	SKU       string  `json:"sku" validate:"required"`
	Name      string  `json:"name"`
	VariantID *string `json:"variantId"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	// TotalPrice overrides unitPrice×quantity for the line when set.
	TotalPrice *decimal.Decimal `json:"totalPrice"`
}

type CreateOrderRequest struct {
	CustomerName string             `json:"customerName"`
	WarehouseID  string             `json:"warehouseId"`
	Status       model.OrderStatus  `json:"status"`
	Lines        []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
	// Total overrides the computed sum of line totals when set.
	Total *decimal.Decimal `json:"total"`
	Notes string           `json:"notes"`
}

// UpdateOrderRequest is a full replace of the order's mutable content.
type UpdateOrderRequest struct {
	CustomerName string             `json:"customerName"`
	WarehouseID  string             `json:"warehouseId"`
	Status       model.OrderStatus  `json:"status" validate:"required"`
	Lines        []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
	Total        *decimal.Decimal   `json:"total"`
	Notes        string             `json:"notes"`
}

// SetOrderStatusRequest sets any status at any time; transitions are not
// validated.
type SetOrderStatusRequest struct {
	Status model.OrderStatus `json:"status" validate:"required"`
}
