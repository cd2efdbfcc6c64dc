package dto

import "github.com/shopspring/decimal"

type ProductRequest struct {
	SKU   string          `json:"sku" validate:"required"`
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

type WarehouseRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
	// Capacity in units; zero means unlimited.
	Capacity int `json:"capacity" validate:"min=0"`
}
