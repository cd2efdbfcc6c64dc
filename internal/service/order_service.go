package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/MichaelOwusu007/vdlpro/internal/dto"
	"github.com/MichaelOwusu007/vdlpro/internal/model"
	"github.com/MichaelOwusu007/vdlpro/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService is the order ledger. Statuses are free-form by design: any
// status can replace any other via SetStatus or a full update.
type OrderService interface {
	Orders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	Create(ctx context.Context, req dto.CreateOrderRequest) (*model.Order, error)
	Update(ctx context.Context, id string, req dto.UpdateOrderRequest) (*model.Order, error)
	SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	Delete(ctx context.Context, id string) error
	Logs(ctx context.Context) ([]model.ActivityEntry, error)
}

type orderService struct {
	repo         repository.OrderRepository
	activityRepo repository.ActivityRepository
}

func NewOrderService(repo repository.OrderRepository, activityRepo repository.ActivityRepository) OrderService {
	return &orderService{repo: repo, activityRepo: activityRepo}
}

func (s *orderService) Orders(ctx context.Context) ([]model.Order, error) {
	return s.repo.All(ctx)
}

func (s *orderService) Order(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*model.Order, error) {
	orders, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.OrderPending
	}

	order := model.Order{
		ID:           "ORD-" + uuid.NewString(),
		Number:       fmt.Sprintf("%d", rand.IntN(9000)+1000),
		CustomerName: req.CustomerName,
		Status:       status,
		WarehouseID:  req.WarehouseID,
		Lines:        buildOrderLines(req.Lines),
		Notes:        req.Notes,
		CreatedAt:    time.Now().UTC(),
	}
	if req.Total != nil {
		order.Total = *req.Total
	} else {
		order.Total = sumLineTotals(order.Lines)
	}

	// Newest first, like every other ledger.
	orders = append([]model.Order{order}, orders...)
	if err := s.repo.Save(ctx, orders); err != nil {
		return nil, err
	}
	s.log(ctx, fmt.Sprintf("Created order %s", order.Number), map[string]interface{}{"orderId": order.ID})
	return &order, nil
}

// Update is a full replace of the order's content; id, number and createdAt
// are preserved.
func (s *orderService) Update(ctx context.Context, id string, req dto.UpdateOrderRequest) (*model.Order, error) {
	orders, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range orders {
		if orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrOrderNotFound
	}

	updated := orders[idx]
	updated.CustomerName = req.CustomerName
	updated.WarehouseID = req.WarehouseID
	updated.Status = req.Status
	updated.Lines = buildOrderLines(req.Lines)
	updated.Notes = req.Notes
	if req.Total != nil {
		updated.Total = *req.Total
	} else {
		updated.Total = sumLineTotals(updated.Lines)
	}
	orders[idx] = updated

	if err := s.repo.Save(ctx, orders); err != nil {
		return nil, err
	}
	s.log(ctx, fmt.Sprintf("Updated order %s", updated.Number), map[string]interface{}{"orderId": updated.ID})
	return &updated, nil
}

func (s *orderService) SetStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	orders, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			if err := s.repo.Save(ctx, orders); err != nil {
				return nil, err
			}
			s.log(ctx, fmt.Sprintf("Order %s status changed to %s", orders[i].Number, status),
				map[string]interface{}{"orderId": id, "status": status})
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	orders, err := s.repo.All(ctx)
	if err != nil {
		return err
	}
	kept := orders[:0]
	found := false
	for _, o := range orders {
		if o.ID == id {
			found = true
			continue
		}
		kept = append(kept, o)
	}
	if !found {
		return ErrOrderNotFound
	}
	if err := s.repo.Save(ctx, kept); err != nil {
		return err
	}
	s.log(ctx, fmt.Sprintf("Deleted order %s", id), map[string]interface{}{"orderId": id})
	return nil
}

func (s *orderService) Logs(ctx context.Context) ([]model.ActivityEntry, error) {
	return s.activityRepo.Entries(ctx, repository.StreamOrders)
}

func (s *orderService) log(ctx context.Context, action string, details map[string]interface{}) {
	_ = s.activityRepo.Push(ctx, repository.StreamOrders, model.ActivityEntry{
		ID:        "ACT-" + uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Action:    action,
		Details:   details,
	})
}

// buildOrderLines resolves each line's total: an explicit totalPrice wins,
// otherwise unitPrice × quantity.
func buildOrderLines(reqs []dto.OrderLineRequest) []model.OrderLine {
	lines := make([]model.OrderLine, 0, len(reqs))
	for _, lr := range reqs {
		line := model.OrderLine{
			ID:        "L-" + uuid.NewString(),
			ProductID: lr.ProductID,
			SKU:       lr.SKU,
			Name:      lr.Name,
			VariantID: lr.VariantID,
			Quantity:  lr.Quantity,
			UnitPrice: lr.UnitPrice,
		}
		if lr.TotalPrice != nil {
			line.TotalPrice = *lr.TotalPrice
		} else {
			line.TotalPrice = lr.UnitPrice.Mul(decimal.NewFromInt(int64(lr.Quantity)))
		}
		lines = append(lines, line)
	}
	return lines
}

func sumLineTotals(lines []model.OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.TotalPrice)
	}
	return total
}
