package dto

import (
	"github.com/shopspring/decimal"

	"github.com/MichaelOwusu007/vdlpro/internal/model"
)

type ShipmentItemRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	SKU       string          `json:"sku" validate:"required"`
	Name      string          `json:"name"`
	Qty       int             `json:"qty" validate:"gt=0"`
	WeightKg  float64         `json:"weightKg"`
	Price     decimal.Decimal `json:"price"`
	VariantID *string         `json:"variantId"`
}

type CreateShipmentRequest struct {
	Reference       string                `json:"reference" validate:"required"`
	CustomerName    string                `json:"customerName" validate:"required"`
	CustomerAddress string                `json:"customerAddress"`
	Items           []ShipmentItemRequest `json:"items" validate:"dive"`
	Status          model.ShipmentStatus  `json:"status"`
	Carrier         string                `json:"carrier"`
	TrackingID      string                `json:"trackingId"`
	WeightKg        float64               `json:"weightKg"`
	Cost            *decimal.Decimal      `json:"cost"`
	Note            string                `json:"note"`
}

// UpdateShipmentRequest is a partial patch; nil fields are left untouched.
type UpdateShipmentRequest struct {
	Reference       *string               `json:"reference"`
	CustomerName    *string               `json:"customerName"`
	CustomerAddress *string               `json:"customerAddress"`
	Items           []ShipmentItemRequest `json:"items" validate:"omitempty,dive"`
	Carrier         *string               `json:"carrier"`
	TrackingID      *string               `json:"trackingId"`
	WeightKg        *float64              `json:"weightKg"`
	Cost            *decimal.Decimal      `json:"cost"`
	Note            *string               `json:"note"`
}

type SetShipmentStatusRequest struct {
	Status model.ShipmentStatus `json:"status" validate:"required"`
}

type ShippingQuoteRequest struct {
	Carrier    string   `json:"carrier" validate:"required"`
	WeightKg   float64  `json:"weightKg" validate:"gt=0"`
	DistanceKm *float64 `json:"distanceKm"`
}

type ShippingQuoteResponse struct {
	Carrier string          `json:"carrier"`
	Cost    decimal.Decimal `json:"cost"`
}
