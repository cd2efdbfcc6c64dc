package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderDraft      OrderStatus = "draft"
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderFulfilled  OrderStatus = "fulfilled"
	OrderCancelled  OrderStatus = "cancelled"
)

type OrderLine struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"productId"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name,omitempty"`
	VariantID  *string         `json:"variantId,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Order invariant: Total = sum of line totals unless explicitly overridden
// at creation.
//
// Status transitions are deliberately NOT validated anywhere — any status may
// be set from any other.
type Order struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	CustomerName string          `json:"customerName,omitempty"`
	Status       OrderStatus     `json:"status"`
	WarehouseID  string          `json:"warehouseId,omitempty"`
	Lines        []OrderLine     `json:"lines"`
	Total        decimal.Decimal `json:"total"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}
