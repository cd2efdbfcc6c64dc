// Package service holds the business logic: the transfer engine, the
// capacity and replenishment policies, the order and shipment ledgers, and
// authentication.
package service

import "errors"

// Ledger error taxonomy. Handlers map these to HTTP status codes:
// validation → 400, not-found → 404, conflict → 409.
var (
	ErrInvalidTransfer   = errors.New("source and destination warehouse must be different")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInsufficientStock = errors.New("insufficient quantity in source")
	ErrStockNotFound     = errors.New("stock line not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrShipmentNotFound  = errors.New("shipment not found")

	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)
