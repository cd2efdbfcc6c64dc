package model

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Stock levels live in StockItem lines, one per
// (warehouse, sku) — the product itself carries no quantity.
type Product struct {
	ID    string          `json:"id"`
	SKU   string          `json:"sku"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image,omitempty"`
}
