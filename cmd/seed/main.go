// cmd/seed/main.go — loads demo data for first run.
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MichaelOwusu007/vdlpro/internal/config"
	"github.com/MichaelOwusu007/vdlpro/internal/infra"
	"github.com/MichaelOwusu007/vdlpro/internal/model"
	"github.com/MichaelOwusu007/vdlpro/internal/repository"
	"github.com/MichaelOwusu007/vdlpro/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx := context.Background()
	kv := store.NewRedisStore(rdb)

	seedAdmin(ctx, db, cfg)
	seedCatalog(ctx, kv)
	seedOrders(ctx, kv)
	seedShipments(ctx, kv)

	fmt.Println("demo data loaded")
}

// seedAdmin creates or refreshes the demo admin account.
func seedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config) {
	email := strings.ToLower("admin@vdlpro.dev")
	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt error")
	}

	result := db.WithContext(ctx).Exec(`
		INSERT INTO users (email, password_hash, first_name, last_name, role, is_active)
		VALUES (?, ?, ?, ?, ?, true)
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    role = EXCLUDED.role,
		    is_active = true
	`, email, string(hash), "Admin", "Demo", "admin")
	if result.Error != nil {
		log.Fatal().Err(result.Error).Msg("admin upsert failed")
	}
	log.Info().Str("email", email).Msg("admin account ready")
}

// seedCatalog writes demo products, warehouses and stock unless present.
func seedCatalog(ctx context.Context, kv store.Store) {
	productRepo := repository.NewProductRepository(kv)
	warehouseRepo := repository.NewWarehouseRepository(kv)
	stockRepo := repository.NewStockRepository(kv)

	if existing, _ := productRepo.All(ctx); len(existing) == 0 {
		products := []model.Product{
			{ID: "P1", SKU: "SKU1", Name: "Product 1", Price: decimal.NewFromInt(10)},
			{ID: "P2", SKU: "SKU2", Name: "Product 2", Price: decimal.NewFromInt(20)},
		}
		if err := productRepo.Save(ctx, products); err != nil {
			log.Fatal().Err(err).Msg("product seed failed")
		}
	}

	if existing, _ := warehouseRepo.All(ctx); len(existing) == 0 {
		warehouses := []model.Warehouse{
			{ID: "W1", Name: "Main Warehouse", Location: "HQ", Capacity: 1000},
			{ID: "W2", Name: "Branch", Location: "City", Capacity: 500},
		}
		if err := warehouseRepo.Save(ctx, warehouses); err != nil {
			log.Fatal().Err(err).Msg("warehouse seed failed")
		}
	}

	if existing, _ := stockRepo.All(ctx); len(existing) == 0 {
		now := time.Now()
		stock := []model.StockItem{
			{ID: "STK-seed-1", ProductID: "P1", SKU: "SKU1", WarehouseID: "W1", Quantity: 100, ReorderPoint: 10, LastUpdated: &now},
			{ID: "STK-seed-2", ProductID: "P2", SKU: "SKU2", WarehouseID: "W2", Quantity: 50, ReorderPoint: 5, LastUpdated: &now},
		}
		if err := stockRepo.Save(ctx, stock); err != nil {
			log.Fatal().Err(err).Msg("stock seed failed")
		}
	}
}

// seedOrders loads two sample orders when the ledger is empty.
func seedOrders(ctx context.Context, kv store.Store) {
	orderRepo := repository.NewOrderRepository(kv)
	if existing, _ := orderRepo.All(ctx); len(existing) > 0 {
		return
	}

	now := time.Now()
	orders := []model.Order{
		{
			ID:           "ORD-1001",
			Number:       "1001",
			CustomerName: "Acme Corp",
			CreatedAt:    now,
			Status:       model.OrderPending,
			WarehouseID:  "WH-1",
			Lines: []model.OrderLine{
				{ID: "L1", ProductID: "P1", SKU: "SKU-001", Name: "Premium Laptop", Quantity: 2, UnitPrice: decimal.NewFromInt(1200), TotalPrice: decimal.NewFromInt(2400)},
			},
			Total: decimal.NewFromInt(2400),
			Notes: "Priority delivery",
		},
		{
			ID:           "ORD-1002",
			Number:       "1002",
			CustomerName: "Beta LLC",
			CreatedAt:    now.Add(-24 * time.Hour),
			Status:       model.OrderProcessing,
			WarehouseID:  "WH-2",
			Lines: []model.OrderLine{
				{ID: "L2", ProductID: "P2", SKU: "SKU-002", Name: "Wireless Headphones", Quantity: 5, UnitPrice: decimal.NewFromInt(199), TotalPrice: decimal.NewFromInt(995)},
				{ID: "L3", ProductID: "P3", SKU: "SKU-003", Name: "Smartwatch", Quantity: 2, UnitPrice: decimal.NewFromInt(199), TotalPrice: decimal.NewFromInt(398)},
			},
			Total: decimal.NewFromInt(1393),
		},
	}
	if err := orderRepo.Save(ctx, orders); err != nil {
		log.Fatal().Err(err).Msg("order seed failed")
	}
}

// seedShipments loads two sample shipments when the ledger is empty.
func seedShipments(ctx context.Context, kv store.Store) {
	shipmentRepo := repository.NewShipmentRepository(kv)
	if existing, _ := shipmentRepo.All(ctx); len(existing) > 0 {
		return
	}

	now := time.Now()
	shipped := now.Add(-6 * 24 * time.Hour)
	shipments := []model.Shipment{
		{
			ID:              "SHP-1001",
			Reference:       "OUT-1001",
			CustomerName:    "Acme Corp",
			CustomerAddress: "12 Baker St, London",
			CreatedAt:       now.Add(-7 * 24 * time.Hour),
			Items: []model.ShipmentItem{
				{ProductID: "P1", SKU: "SKU-001", Name: "Premium Laptop", Qty: 2, WeightKg: 2.5, Price: decimal.NewFromInt(1200)},
				{ProductID: "P3", SKU: "SKU-003", Name: "Headphones", Qty: 1, WeightKg: 0.3, Price: decimal.NewFromInt(199)},
			},
			Status:     model.ShipmentShipped,
			Carrier:    "dhl",
			TrackingID: "DHL-TRK-1001",
			WeightKg:   5.3,
			Cost:       decimal.NewFromFloat(25.5),
			ShippedAt:  &shipped,
		},
		{
			ID:              "SHP-1002",
			Reference:       "OUT-1002",
			CustomerName:    "Beta LLC",
			CustomerAddress: "25 Market Rd, Accra",
			CreatedAt:       now,
			Items: []model.ShipmentItem{
				{ProductID: "P2", SKU: "SKU-002", Name: "Smartphone Pro", Qty: 1, WeightKg: 0.4, Price: decimal.NewFromInt(899)},
			},
			Status:   model.ShipmentPending,
			WeightKg: 0.4,
			Cost:     decimal.NewFromInt(5),
		},
	}
	if err := shipmentRepo.Save(ctx, shipments); err != nil {
		log.Fatal().Err(err).Msg("shipment seed failed")
	}
}
