//go:build integration

package e2e

// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MichaelOwusu007/vdlpro/internal/config"
	"github.com/MichaelOwusu007/vdlpro/internal/infra"
	"github.com/MichaelOwusu007/vdlpro/internal/model"
	"github.com/MichaelOwusu007/vdlpro/internal/repository"
	"github.com/MichaelOwusu007/vdlpro/internal/router"
	"github.com/MichaelOwusu007/vdlpro/internal/store"
	"github.com/MichaelOwusu007/vdlpro/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// setup spins up Postgres + Redis containers and returns a running test server.
func setup(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("vdlpro"),
		tcPostgres.WithUsername("vdlpro"),
		tcPostgres.WithPassword("vdlpro"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	redisC, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	redisURL, err := redisC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               0,
		Env:                "test",
		DatabaseURL:        dsn,
		RedisURL:           redisURL,
		JWTSecret:          "e2e-secret",
		JWTExpirationHours: 1,
		BcryptCost:         4,
		UploadDir:          t.TempDir(),
		MaxUploadMB:        5,
		PDFStoragePath:     t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	engine := router.New(cfg, db, rdb, worker.NewDispatcher(rdb))

	// Minimal catalog so transfers have something to move
	kv := store.NewRedisStore(rdb)
	require.NoError(t, repository.NewWarehouseRepository(kv).Save(ctx, []model.Warehouse{
		{ID: "W1", Name: "Main Warehouse", Capacity: 1000},
		{ID: "W2", Name: "Branch", Capacity: 500},
	}))
	require.NoError(t, repository.NewStockRepository(kv).Save(ctx, []model.StockItem{
		{ID: "STK-1", ProductID: "P1", SKU: "SKU1", WarehouseID: "W1", Quantity: 100, ReorderPoint: 10},
	}))

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestFullFlow(t *testing.T) {
	srv := setup(t)

	// Register and login
	resp := do(t, srv, http.MethodPost, "/api/auth/register",
		jsonBody(t, map[string]string{"email": "e2e@example.com", "password": "pw123456"}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	auth := decode[struct {
		Token string `json:"token"`
	}](t, resp)
	require.NotEmpty(t, auth.Token)

	// Duplicate registration conflicts
	resp = do(t, srv, http.MethodPost, "/api/auth/register",
		jsonBody(t, map[string]string{"email": "e2e@example.com", "password": "other"}), "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Protected route without a token is rejected
	resp = do(t, srv, http.MethodGet, "/api/inventory/stock", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Transfer 30 units W1 → W2
	resp = do(t, srv, http.MethodPost, "/api/inventory/transfers",
		jsonBody(t, map[string]any{"fromWarehouseId": "W1", "toWarehouseId": "W2", "sku": "SKU1", "quantity": 30}),
		auth.Token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	rec := decode[model.TransferRecord](t, resp)
	assert.Equal(t, model.TransferCompleted, rec.Status)

	// Stock reflects both halves
	resp = do(t, srv, http.MethodGet, "/api/inventory/stock", nil, auth.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stock := decode[[]model.StockItem](t, resp)
	qty := map[string]int{}
	for _, item := range stock {
		qty[item.WarehouseID] += item.Quantity
	}
	assert.Equal(t, 70, qty["W1"])
	assert.Equal(t, 30, qty["W2"])

	// Create an order; total is the sum of line totals
	resp = do(t, srv, http.MethodPost, "/api/orders", jsonBody(t, map[string]any{
		"customerName": "Acme Corp",
		"lines": []map[string]any{
			{"productId": "P1", "sku": "SKU-001", "quantity": 2, "unitPrice": "1200"},
			{"productId": "P2", "sku": "SKU-002", "quantity": 1, "unitPrice": "199"},
		},
	}), auth.Token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decode[model.Order](t, resp)
	assert.Equal(t, "2599", order.Total.String())
	assert.Equal(t, model.OrderPending, order.Status)

	// Quote a shipment
	resp = do(t, srv, http.MethodPost, "/api/shipments/quote",
		jsonBody(t, map[string]any{"carrier": "dhl", "weightKg": 2}), auth.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	quote := decode[struct {
		Cost string `json:"cost"`
	}](t, resp)
	assert.Equal(t, "7.1", quote.Cost)

	// Health is green
	resp = do(t, srv, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Metrics endpoint exposes the request counter
	resp = do(t, srv, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	resp.Body.Close()
	assert.Contains(t, buf.String(), "http_requests_total")
}

func TestLedgerSurvivesRestart(t *testing.T) {
	srv := setup(t)

	resp := do(t, srv, http.MethodPost, "/api/auth/register",
		jsonBody(t, map[string]string{"email": fmt.Sprintf("r%d@example.com", time.Now().UnixNano()), "password": "pw123456"}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	auth := decode[struct {
		Token string `json:"token"`
	}](t, resp)

	resp = do(t, srv, http.MethodPost, "/api/shipments", jsonBody(t, map[string]any{
		"reference":    "OUT-9001",
		"customerName": "Acme Corp",
		"carrier":      "fedex",
		"weightKg":     1.0,
	}), auth.Token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[model.Shipment](t, resp)

	// Mark shipped and confirm the timestamp survives a re-read
	resp = do(t, srv, http.MethodPatch, "/api/shipments/"+created.ID+"/status",
		jsonBody(t, map[string]string{"status": "shipped"}), auth.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, srv, http.MethodGet, "/api/shipments/"+created.ID, nil, auth.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[model.Shipment](t, resp)
	assert.Equal(t, model.ShipmentShipped, got.Status)
	assert.NotNil(t, got.ShippedAt)
}
