package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MichaelOwusu007/vdlpro/internal/dto"
	"github.com/MichaelOwusu007/vdlpro/internal/model"
	"github.com/MichaelOwusu007/vdlpro/internal/repository"
	"github.com/MichaelOwusu007/vdlpro/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// minReplenishQty floors the replenishment increment: max(reorderPoint, 10).
const minReplenishQty = 10

// InventoryService is the stock ledger plus the transfer engine and the
// capacity/replenishment policies.
type InventoryService interface {
	Stock(ctx context.Context) ([]model.StockItem, error)
	CreateStockItem(ctx context.Context, req dto.CreateStockItemRequest) (*model.StockItem, error)
	AdjustStock(ctx context.Context, itemID string, change int) (*model.StockItem, error)
	DeleteStockItem(ctx context.Context, itemID string) error

	Transfer(ctx context.Context, req dto.TransferRequest) (*model.TransferRecord, error)
	Transfers(ctx context.Context) ([]model.TransferRecord, error)

	HasCapacity(ctx context.Context, warehouseID string, additional int) (bool, error)
	Capacity(ctx context.Context, warehouseID string) (*dto.CapacityResponse, error)

	LowStock(ctx context.Context) ([]model.StockItem, error)
	Replenish(ctx context.Context, itemID string) (*model.StockItem, error)

	Value(ctx context.Context) (*dto.InventoryValueResponse, error)
	Logs(ctx context.Context) ([]model.ActivityEntry, error)
}

type inventoryService struct {
	stockRepo     repository.StockRepository
	transferRepo  repository.TransferRepository
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	activityRepo  repository.ActivityRepository
	dispatcher    *worker.Dispatcher
	alertEmail    string
}

func NewInventoryService(
	stockRepo repository.StockRepository,
	transferRepo repository.TransferRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	activityRepo repository.ActivityRepository,
	dispatcher *worker.Dispatcher,
	alertEmail string,
) InventoryService {
	return &inventoryService{
		stockRepo:     stockRepo,
		transferRepo:  transferRepo,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		activityRepo:  activityRepo,
		dispatcher:    dispatcher,
		alertEmail:    alertEmail,
	}
}

func (s *inventoryService) Stock(ctx context.Context) ([]model.StockItem, error) {
	return s.stockRepo.All(ctx)
}

func (s *inventoryService) CreateStockItem(ctx context.Context, req dto.CreateStockItemRequest) (*model.StockItem, error) {
	stock, err := s.stockRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	item := model.StockItem{
		ID:           "STK-" + uuid.NewString(),
		ProductID:    req.ProductID,
		SKU:          req.SKU,
		Name:         req.Name,
		WarehouseID:  req.WarehouseID,
		VariantID:    req.VariantID,
		Quantity:     req.Quantity,
		ReorderPoint: req.ReorderPoint,
		BatchLot:     req.BatchLot,
		Note:         req.Note,
		LastUpdated:  &now,
	}
	stock = append(stock, item)
	if err := s.stockRepo.Save(ctx, stock); err != nil {
		return nil, err
	}
	s.log(ctx, "CREATED", map[string]interface{}{
		"productId":   item.ProductID,
		"sku":         item.SKU,
		"warehouseId": item.WarehouseID,
		"qty":         item.Quantity,
	})
	return &item, nil
}

// AdjustStock applies a signed change to one line. The quantity floor is zero:
// a change that would drive a line negative is rejected with the stock
// untouched.
func (s *inventoryService) AdjustStock(ctx context.Context, itemID string, change int) (*model.StockItem, error) {
	stock, err := s.stockRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	idx := findStockIndex(stock, itemID)
	if idx == -1 {
		return nil, ErrStockNotFound
	}
	if stock[idx].Quantity+change < 0 {
		return nil, ErrInsufficientStock
	}
	now := time.Now().UTC()
	stock[idx].Quantity += change
	stock[idx].LastUpdated = &now
	if err := s.stockRepo.Save(ctx, stock); err != nil {
		return nil, err
	}
	item := stock[idx]
	s.log(ctx, "ADJUSTMENT", map[string]interface{}{
		"productId":   item.ProductID,
		"variantId":   item.VariantID,
		"change":      change,
		"newQty":      item.Quantity,
		"warehouseId": item.WarehouseID,
	})
	s.maybeAlertLowStock(ctx, item)
	return &item, nil
}

func (s *inventoryService) DeleteStockItem(ctx context.Context, itemID string) error {
	stock, err := s.stockRepo.All(ctx)
	if err != nil {
		return err
	}
	idx := findStockIndex(stock, itemID)
	if idx == -1 {
		return ErrStockNotFound
	}
	removed := stock[idx]
	stock = append(stock[:idx], stock[idx+1:]...)
	if err := s.stockRepo.Save(ctx, stock); err != nil {
		return err
	}
	s.log(ctx, "DELETION", map[string]interface{}{
		"productId":   removed.ProductID,
		"sku":         removed.SKU,
		"warehouseId": removed.WarehouseID,
	})
	return nil
}

// ── Transfer engine ──────────────────────────────────────────────────────────
//
// Moves quantity units of a SKU between two warehouses. Both halves of the
// move land in a single Save of the full stock collection, so the ledger is
// never persisted with only one side applied. Capacity is deliberately not
// checked here — the policy is advisory and callers decide (fail-open).

func (s *inventoryService) Transfer(ctx context.Context, req dto.TransferRequest) (*model.TransferRecord, error) {
	if req.FromWarehouseID == req.ToWarehouseID {
		return nil, ErrInvalidTransfer
	}
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	stock, err := s.stockRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	srcIdx := -1
	for i := range stock {
		if stock[i].WarehouseID == req.FromWarehouseID && stock[i].SKU == req.SKU {
			srcIdx = i
			break
		}
	}
	if srcIdx == -1 {
		return nil, ErrStockNotFound
	}
	if stock[srcIdx].Quantity < req.Quantity {
		return nil, ErrInsufficientStock
	}

	now := time.Now().UTC()
	stock[srcIdx].Quantity -= req.Quantity
	stock[srcIdx].LastUpdated = &now

	destIdx := -1
	for i := range stock {
		if stock[i].WarehouseID == req.ToWarehouseID && stock[i].SKU == req.SKU {
			destIdx = i
			break
		}
	}
	if destIdx == -1 {
		// No line at the destination yet — clone the source metadata.
		line := stock[srcIdx]
		line.ID = "STK-" + uuid.NewString()
		line.WarehouseID = req.ToWarehouseID
		line.Quantity = req.Quantity
		line.LastUpdated = &now
		stock = append(stock, line)
	} else {
		stock[destIdx].Quantity += req.Quantity
		stock[destIdx].LastUpdated = &now
	}

	record := model.TransferRecord{
		ID:              "TR-" + uuid.NewString(),
		ProductID:       stock[srcIdx].ProductID,
		SKU:             stock[srcIdx].SKU,
		VariantID:       stock[srcIdx].VariantID,
		FromWarehouseID: req.FromWarehouseID,
		ToWarehouseID:   req.ToWarehouseID,
		Quantity:        req.Quantity,
		Status:          model.TransferCompleted,
		Note:            req.Note,
		CreatedAt:       now,
	}

	if err := s.stockRepo.Save(ctx, stock); err != nil {
		return nil, err
	}
	if err := s.transferRepo.Prepend(ctx, record); err != nil {
		return nil, err
	}

	s.log(ctx, "TRANSFER", map[string]interface{}{
		"productId": record.ProductID,
		"qty":       record.Quantity,
		"from":      record.FromWarehouseID,
		"to":        record.ToWarehouseID,
		"status":    record.Status,
	})
	s.maybeAlertLowStock(ctx, stock[srcIdx])
	return &record, nil
}

func (s *inventoryService) Transfers(ctx context.Context) ([]model.TransferRecord, error) {
	return s.transferRepo.All(ctx)
}

// ── Capacity policy ──────────────────────────────────────────────────────────

// HasCapacity reports whether the warehouse can take additional units.
// A warehouse with capacity 0/unset is unlimited and always has room.
func (s *inventoryService) HasCapacity(ctx context.Context, warehouseID string, additional int) (bool, error) {
	wh, err := s.warehouseRepo.FindByID(ctx, warehouseID)
	if err != nil {
		return false, err
	}
	if wh == nil || wh.Capacity == 0 {
		return true, nil
	}
	used, err := s.capacityUsed(ctx, warehouseID)
	if err != nil {
		return false, err
	}
	return used+additional <= wh.Capacity, nil
}

func (s *inventoryService) Capacity(ctx context.Context, warehouseID string) (*dto.CapacityResponse, error) {
	wh, err := s.warehouseRepo.FindByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, ErrWarehouseNotFound
	}
	used, err := s.capacityUsed(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	resp := &dto.CapacityResponse{
		WarehouseID: warehouseID,
		Capacity:    wh.Capacity,
		Used:        used,
		Unlimited:   wh.Capacity == 0,
	}
	if wh.Capacity > 0 {
		left := wh.Capacity - used
		resp.Left = &left
	}
	return resp, nil
}

func (s *inventoryService) capacityUsed(ctx context.Context, warehouseID string) (int, error) {
	stock, err := s.stockRepo.All(ctx)
	if err != nil {
		return 0, err
	}
	used := 0
	for _, item := range stock {
		if item.WarehouseID == warehouseID {
			used += item.Quantity
		}
	}
	return used, nil
}

// ── Replenishment policy ─────────────────────────────────────────────────────

func (s *inventoryService) LowStock(ctx context.Context) ([]model.StockItem, error) {
	stock, err := s.stockRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]model.StockItem, 0)
	for _, item := range stock {
		if item.ReorderPoint > item.Quantity {
			low = append(low, item)
		}
	}
	return low, nil
}

// Replenish adds max(reorderPoint, 10) units to the line.
func (s *inventoryService) Replenish(ctx context.Context, itemID string) (*model.StockItem, error) {
	stock, err := s.stockRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	idx := findStockIndex(stock, itemID)
	if idx == -1 {
		return nil, ErrStockNotFound
	}
	qty := stock[idx].ReorderPoint
	if qty < minReplenishQty {
		qty = minReplenishQty
	}
	now := time.Now().UTC()
	stock[idx].Quantity += qty
	stock[idx].LastUpdated = &now
	if err := s.stockRepo.Save(ctx, stock); err != nil {
		return nil, err
	}
	item := stock[idx]
	s.log(ctx, "REPLENISH", map[string]interface{}{
		"productId":   item.ProductID,
		"warehouseId": item.WarehouseID,
		"added":       qty,
		"newQty":      item.Quantity,
	})
	return &item, nil
}

// ── Valuation ────────────────────────────────────────────────────────────────

// Value sums price×quantity per warehouse and overall. Lines whose product is
// missing from the catalog count as zero.
func (s *inventoryService) Value(ctx context.Context) (*dto.InventoryValueResponse, error) {
	stock, err := s.stockRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	prices := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}

	byWarehouse := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, item := range stock {
		v := prices[item.ProductID].Mul(decimal.NewFromInt(int64(item.Quantity)))
		byWarehouse[item.WarehouseID] = byWarehouse[item.WarehouseID].Add(v)
		total = total.Add(v)
	}

	resp := &dto.InventoryValueResponse{Total: total, Warehouses: make([]dto.WarehouseValue, 0, len(byWarehouse))}
	for id, v := range byWarehouse {
		resp.Warehouses = append(resp.Warehouses, dto.WarehouseValue{WarehouseID: id, Value: v})
	}
	return resp, nil
}

func (s *inventoryService) Logs(ctx context.Context) ([]model.ActivityEntry, error) {
	return s.activityRepo.Entries(ctx, repository.StreamInventory)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func findStockIndex(stock []model.StockItem, itemID string) int {
	for i := range stock {
		if stock[i].ID == itemID {
			return i
		}
	}
	return -1
}

// log appends to the inventory stream; logging never fails a mutation.
func (s *inventoryService) log(ctx context.Context, action string, details map[string]interface{}) {
	_ = s.activityRepo.Push(ctx, repository.StreamInventory, model.ActivityEntry{
		ID:        "ACT-" + uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Action:    action,
		Details:   details,
	})
}

// maybeAlertLowStock enqueues a best-effort alert mail when a line sits below
// its reorder point after a mutation.
func (s *inventoryService) maybeAlertLowStock(ctx context.Context, item model.StockItem) {
	if s.dispatcher == nil || s.alertEmail == "" {
		return
	}
	if item.ReorderPoint <= item.Quantity {
		return
	}
	_ = s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
		ToEmail: s.alertEmail,
		Subject: fmt.Sprintf("Low stock: %s at %s", item.SKU, item.WarehouseID),
		Body: fmt.Sprintf("Stock line %s (%s) at warehouse %s is down to %d units (reorder point %d).",
			item.ID, item.SKU, item.WarehouseID, item.Quantity, item.ReorderPoint),
	})
}
