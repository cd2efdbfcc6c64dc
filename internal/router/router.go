package router

import (
	"time"

	"github.com/MichaelOwusu007/vdlpro/internal/config"
	"github.com/MichaelOwusu007/vdlpro/internal/handler"
	"github.com/MichaelOwusu007/vdlpro/internal/metrics"
	"github.com/MichaelOwusu007/vdlpro/internal/middleware"
	"github.com/MichaelOwusu007/vdlpro/internal/repository"
	"github.com/MichaelOwusu007/vdlpro/internal/service"
	"github.com/MichaelOwusu007/vdlpro/internal/store"
	"github.com/MichaelOwusu007/vdlpro/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.FrontendURL))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	httpMetrics := metrics.NewHTTPMetrics("vdlpro")
	r.Use(httpMetrics.Middleware())

	// ── Repositories ─────────────────────────────────────────────────────────
	kv := store.NewRedisStore(rdb)
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(kv)
	warehouseRepo := repository.NewWarehouseRepository(kv)
	stockRepo := repository.NewStockRepository(kv)
	transferRepo := repository.NewTransferRepository(kv)
	orderRepo := repository.NewOrderRepository(kv)
	shipmentRepo := repository.NewShipmentRepository(kv)
	activityRepo := repository.NewActivityRepository(kv)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	catalogSvc := service.NewCatalogService(productRepo, warehouseRepo, activityRepo)
	inventorySvc := service.NewInventoryService(stockRepo, transferRepo, warehouseRepo, productRepo, activityRepo, dispatcher, cfg.AlertEmail)
	orderSvc := service.NewOrderService(orderRepo, activityRepo)
	shipmentSvc := service.NewShipmentService(shipmentRepo, activityRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc, cfg)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	shipmentsH := handler.NewShipmentsHandler(shipmentSvc, cfg)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.Static("/uploads", cfg.UploadDir)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}
	r.GET("/api/users/:id", usersH.PublicProfile)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		api.GET("/auth/me", authH.Me)
		api.POST("/users/avatar", usersH.UploadAvatar)

		products := api.Group("/products")
		{
			products.GET("", catalogH.ListProducts)
			products.GET("/:id", catalogH.GetProduct)
			products.POST("", catalogH.CreateProduct)
			products.PUT("/:id", catalogH.UpdateProduct)
			products.DELETE("/:id", catalogH.DeleteProduct)
		}

		warehouses := api.Group("/warehouses")
		{
			warehouses.GET("", catalogH.ListWarehouses)
			warehouses.POST("", catalogH.CreateWarehouse)
			warehouses.PUT("/:id", catalogH.UpdateWarehouse)
			warehouses.DELETE("/:id", catalogH.DeleteWarehouse)
			warehouses.GET("/:id/capacity", inventoryH.Capacity)
		}

		inv := api.Group("/inventory")
		{
			inv.GET("/stock", inventoryH.ListStock)
			inv.POST("/stock", inventoryH.CreateStockItem)
			inv.PATCH("/stock/:id/adjust", inventoryH.AdjustStock)
			inv.POST("/stock/:id/replenish", inventoryH.Replenish)
			inv.DELETE("/stock/:id", inventoryH.DeleteStockItem)
			inv.GET("/transfers", inventoryH.ListTransfers)
			inv.POST("/transfers", inventoryH.Transfer)
			inv.GET("/low-stock", inventoryH.LowStock)
			inv.GET("/value", inventoryH.Value)
			inv.GET("/logs", inventoryH.Logs)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", ordersH.List)
			orders.GET("/logs", ordersH.Logs)
			orders.GET("/:id", ordersH.Get)
			orders.POST("", ordersH.Create)
			orders.PUT("/:id", ordersH.Update)
			orders.PATCH("/:id/status", ordersH.SetStatus)
			orders.DELETE("/:id", ordersH.Delete)
		}

		shipments := api.Group("/shipments")
		{
			shipments.GET("", shipmentsH.List)
			shipments.GET("/carriers", shipmentsH.Carriers)
			shipments.POST("/quote", shipmentsH.Quote)
			shipments.GET("/activity", shipmentsH.Activity)
			shipments.GET("/:id", shipmentsH.Get)
			shipments.GET("/:id/packing-slip", shipmentsH.PackingSlip)
			shipments.POST("", shipmentsH.Create)
			shipments.PUT("/:id", shipmentsH.Update)
			shipments.PATCH("/:id/status", shipmentsH.SetStatus)
			shipments.DELETE("/:id", shipmentsH.Delete)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
