package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "pending"
	ShipmentPacked    ShipmentStatus = "packed"
	ShipmentShipped   ShipmentStatus = "shipped"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
	ShipmentCancelled ShipmentStatus = "cancelled"
)

type ShipmentItem struct {
	ProductID string          `json:"productId"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name,omitempty"`
	Qty       int             `json:"qty"`
	WeightKg  float64         `json:"weightKg,omitempty"`
	Price     decimal.Decimal `json:"price"`
	VariantID *string         `json:"variantId,omitempty"`
}

// Shipment progression is pending → packed → shipped → in_transit → delivered,
// but like orders, statuses are settable out of order by direct call.
type Shipment struct {
	ID              string          `json:"id"`
	Reference       string          `json:"reference"`
	CustomerName    string          `json:"customerName"`
	CustomerAddress string          `json:"customerAddress,omitempty"`
	Items           []ShipmentItem  `json:"items"`
	Status          ShipmentStatus  `json:"status"`
	Carrier         string          `json:"carrier,omitempty"`
	TrackingID      string          `json:"trackingId,omitempty"`
	WeightKg        float64         `json:"weightKg,omitempty"`
	Cost            decimal.Decimal `json:"cost"`
	Note            string          `json:"note,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	ShippedAt       *time.Time      `json:"shippedAt,omitempty"`
}

// Carrier is a shipping provider with a base rate used by the cost estimate.
type Carrier struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Base decimal.Decimal `json:"base"`
}
