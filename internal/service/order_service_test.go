package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/MichaelOwusu007/vdlpro/internal/dto"
	"github.com/MichaelOwusu007/vdlpro/internal/model"
	"github.com/MichaelOwusu007/vdlpro/internal/repository"
	"github.com/MichaelOwusu007/vdlpro/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) OrderService {
	t.Helper()
	kv := store.NewMemoryStore()
	return NewOrderService(repository.NewOrderRepository(kv), repository.NewActivityRepository(kv))
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestCreateOrderComputesTotalFromLines(t *testing.T) {
	svc := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, dto.CreateOrderRequest{
		CustomerName: "Acme Corp",
		WarehouseID:  "W1",
		Lines: []dto.OrderLineRequest{
			{ProductID: "P1", SKU: "SKU-001", Name: "Premium Laptop", Quantity: 2, UnitPrice: dec(1200)},
			{ProductID: "P2", SKU: "SKU-002", Name: "Wireless Headphones", Quantity: 1, UnitPrice: dec(199)},
		},
	})
	require.NoError(t, err)

	assert.True(t, order.Total.Equal(dec(2599)), "total = %s", order.Total)
	require.Len(t, order.Lines, 2)
	assert.True(t, order.Lines[0].TotalPrice.Equal(dec(2400)))
	assert.True(t, order.Lines[1].TotalPrice.Equal(dec(199)))
}

func TestCreateOrderDefaults(t *testing.T) {
	svc := newOrderService(t)

	order, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerName: "Beta LLC",
		Lines:        []dto.OrderLineRequest{{ProductID: "P1", SKU: "S1", Quantity: 1, UnitPrice: dec(10)}},
	})
	require.NoError(t, err)

	assert.Equal(t, model.OrderPending, order.Status)
	assert.NotEmpty(t, order.ID)
	assert.Contains(t, order.ID, "ORD-")

	n, err := strconv.Atoi(order.Number)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 1000)
	assert.LessOrEqual(t, n, 9999)
}

func TestCreateOrderTotalOverride(t *testing.T) {
	svc := newOrderService(t)

	override := dec(500)
	order, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.OrderLineRequest{{ProductID: "P1", SKU: "S1", Quantity: 2, UnitPrice: dec(1000)}},
		Total: &override,
	})
	require.NoError(t, err)
	assert.True(t, order.Total.Equal(dec(500)))
}

func TestOrdersNewestFirst(t *testing.T) {
	svc := newOrderService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, dto.CreateOrderRequest{
		Lines: []dto.OrderLineRequest{{ProductID: "P1", SKU: "S1", Quantity: 1, UnitPrice: dec(1)}},
	})
	require.NoError(t, err)
	second, err := svc.Create(ctx, dto.CreateOrderRequest{
		Lines: []dto.OrderLineRequest{{ProductID: "P2", SKU: "S2", Quantity: 1, UnitPrice: dec(2)}},
	})
	require.NoError(t, err)

	orders, err := svc.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestSetOrderStatusIsFreeForm(t *testing.T) {
	svc := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, dto.CreateOrderRequest{
		Lines: []dto.OrderLineRequest{{ProductID: "P1", SKU: "S1", Quantity: 1, UnitPrice: dec(1)}},
	})
	require.NoError(t, err)

	// Any status from any status, including skipping straight to fulfilled
	// and back to draft.
	for _, status := range []model.OrderStatus{model.OrderFulfilled, model.OrderDraft, model.OrderCancelled} {
		updated, err := svc.SetStatus(ctx, order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	_, err = svc.SetStatus(ctx, "ORD-missing", model.OrderPending)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateOrderPreservesIdentity(t *testing.T) {
	svc := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, dto.CreateOrderRequest{
		CustomerName: "Acme Corp",
		Lines:        []dto.OrderLineRequest{{ProductID: "P1", SKU: "S1", Quantity: 1, UnitPrice: dec(10)}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, order.ID, dto.UpdateOrderRequest{
		CustomerName: "Acme Corp Ltd",
		Status:       model.OrderProcessing,
		Lines:        []dto.OrderLineRequest{{ProductID: "P2", SKU: "S2", Quantity: 3, UnitPrice: dec(50)}},
	})
	require.NoError(t, err)

	assert.Equal(t, order.ID, updated.ID)
	assert.Equal(t, order.Number, updated.Number)
	assert.Equal(t, order.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Acme Corp Ltd", updated.CustomerName)
	assert.True(t, updated.Total.Equal(dec(150)))
}

func TestDeleteOrder(t *testing.T) {
	svc := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, dto.CreateOrderRequest{
		Lines: []dto.OrderLineRequest{{ProductID: "P1", SKU: "S1", Quantity: 1, UnitPrice: dec(1)}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, order.ID))

	_, err = svc.Order(ctx, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, order.ID), ErrOrderNotFound)
}

func TestOrderLogs(t *testing.T) {
	svc := newOrderService(t)
	ctx := context.Background()

	order, err := svc.Create(ctx, dto.CreateOrderRequest{
		Lines: []dto.OrderLineRequest{{ProductID: "P1", SKU: "S1", Quantity: 1, UnitPrice: dec(1)}},
	})
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, order.ID, model.OrderProcessing)
	require.NoError(t, err)

	logs, err := svc.Logs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Contains(t, logs[0].Action, "status changed")
	assert.Contains(t, logs[1].Action, "Created order")
}
