package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MichaelOwusu007/vdlpro/internal/dto"
	"github.com/MichaelOwusu007/vdlpro/internal/model"
	"github.com/MichaelOwusu007/vdlpro/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// defaultDistanceKm is assumed when a quote omits the distance.
const defaultDistanceKm = 10.0

// ShipmentService is the shipment ledger plus the carrier table and the cost
// estimate. Status progression is not validated — see OrderService.
type ShipmentService interface {
	Shipments(ctx context.Context) ([]model.Shipment, error)
	Shipment(ctx context.Context, id string) (*model.Shipment, error)
	Create(ctx context.Context, req dto.CreateShipmentRequest) (*model.Shipment, error)
	Update(ctx context.Context, id string, req dto.UpdateShipmentRequest) (*model.Shipment, error)
	SetStatus(ctx context.Context, id string, status model.ShipmentStatus) (*model.Shipment, error)
	Delete(ctx context.Context, id string) error

	Carriers() []model.Carrier
	CalcShippingCost(carrierID string, weightKg, distanceKm float64) decimal.Decimal
	Activity(ctx context.Context) ([]model.ActivityEntry, error)
}

type shipmentService struct {
	repo         repository.ShipmentRepository
	activityRepo repository.ActivityRepository
}

func NewShipmentService(repo repository.ShipmentRepository, activityRepo repository.ActivityRepository) ShipmentService {
	return &shipmentService{repo: repo, activityRepo: activityRepo}
}

func (s *shipmentService) Shipments(ctx context.Context) ([]model.Shipment, error) {
	return s.repo.All(ctx)
}

func (s *shipmentService) Shipment(ctx context.Context, id string) (*model.Shipment, error) {
	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, ErrShipmentNotFound
	}
	return sh, nil
}

func (s *shipmentService) Create(ctx context.Context, req dto.CreateShipmentRequest) (*model.Shipment, error) {
	shipments, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.ShipmentPending
	}
	shipment := model.Shipment{
		ID:              "SHP-" + uuid.NewString(),
		Reference:       req.Reference,
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		Items:           buildShipmentItems(req.Items),
		Status:          status,
		Carrier:         req.Carrier,
		TrackingID:      req.TrackingID,
		WeightKg:        req.WeightKg,
		Note:            req.Note,
		CreatedAt:       time.Now().UTC(),
	}
	if req.Cost != nil {
		shipment.Cost = *req.Cost
	} else if req.Carrier != "" && req.WeightKg > 0 {
		shipment.Cost = s.CalcShippingCost(req.Carrier, req.WeightKg, defaultDistanceKm)
	}

	shipments = append([]model.Shipment{shipment}, shipments...)
	if err := s.repo.Save(ctx, shipments); err != nil {
		return nil, err
	}
	s.pushActivity(ctx, "shipment_created",
		fmt.Sprintf("Shipment %s created for %s", shipment.Reference, shipment.CustomerName),
		map[string]interface{}{"shipmentId": shipment.ID})
	return &shipment, nil
}

// Update applies a partial patch; nil fields keep their current value.
func (s *shipmentService) Update(ctx context.Context, id string, req dto.UpdateShipmentRequest) (*model.Shipment, error) {
	shipments, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range shipments {
		if shipments[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrShipmentNotFound
	}

	sh := &shipments[idx]
	if req.Reference != nil {
		sh.Reference = *req.Reference
	}
	if req.CustomerName != nil {
		sh.CustomerName = *req.CustomerName
	}
	if req.CustomerAddress != nil {
		sh.CustomerAddress = *req.CustomerAddress
	}
	if req.Items != nil {
		sh.Items = buildShipmentItems(req.Items)
	}
	if req.Carrier != nil {
		sh.Carrier = *req.Carrier
	}
	if req.TrackingID != nil {
		sh.TrackingID = *req.TrackingID
	}
	if req.WeightKg != nil {
		sh.WeightKg = *req.WeightKg
	}
	if req.Cost != nil {
		sh.Cost = *req.Cost
	}
	if req.Note != nil {
		sh.Note = *req.Note
	}

	if err := s.repo.Save(ctx, shipments); err != nil {
		return nil, err
	}
	return sh, nil
}

// SetStatus sets any status at any time and stamps shippedAt the moment a
// shipment first goes out.
func (s *shipmentService) SetStatus(ctx context.Context, id string, status model.ShipmentStatus) (*model.Shipment, error) {
	shipments, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range shipments {
		if shipments[i].ID != id {
			continue
		}
		shipments[i].Status = status
		if status == model.ShipmentShipped {
			now := time.Now().UTC()
			shipments[i].ShippedAt = &now
		}
		if err := s.repo.Save(ctx, shipments); err != nil {
			return nil, err
		}
		s.pushActivity(ctx, "status_update",
			fmt.Sprintf("Shipment %s status changed to %s", shipments[i].Reference, status),
			map[string]interface{}{"shipmentId": id, "status": status})
		return &shipments[i], nil
	}
	return nil, ErrShipmentNotFound
}

func (s *shipmentService) Delete(ctx context.Context, id string) error {
	shipments, err := s.repo.All(ctx)
	if err != nil {
		return err
	}
	kept := shipments[:0]
	found := false
	for _, sh := range shipments {
		if sh.ID == id {
			found = true
			continue
		}
		kept = append(kept, sh)
	}
	if !found {
		return ErrShipmentNotFound
	}
	if err := s.repo.Save(ctx, kept); err != nil {
		return err
	}
	s.pushActivity(ctx, "shipment_deleted",
		fmt.Sprintf("Shipment %s deleted", id),
		map[string]interface{}{"shipmentId": id})
	return nil
}

// Carriers is the fixed provider table with per-carrier base rates.
func (s *shipmentService) Carriers() []model.Carrier {
	return []model.Carrier{
		{ID: "dhl", Name: "DHL Express", Base: decimal.NewFromInt(5)},
		{ID: "fedex", Name: "FedEx", Base: decimal.NewFromInt(6)},
		{ID: "ups", Name: "UPS", Base: decimal.NewFromFloat(5.5)},
		{ID: "local", Name: "Local Courier", Base: decimal.NewFromInt(3)},
	}
}

// CalcShippingCost estimates max(4, base + 0.8·weight + 0.05·distance).
// Unknown carriers fall back to a base of 5.
func (s *shipmentService) CalcShippingCost(carrierID string, weightKg, distanceKm float64) decimal.Decimal {
	base := decimal.NewFromInt(5)
	for _, c := range s.Carriers() {
		if c.ID == carrierID {
			base = c.Base
			break
		}
	}
	cost := base.
		Add(decimal.NewFromFloat(weightKg).Mul(decimal.NewFromFloat(0.8))).
		Add(decimal.NewFromFloat(distanceKm).Mul(decimal.NewFromFloat(0.05)))
	floor := decimal.NewFromInt(4)
	if cost.LessThan(floor) {
		return floor
	}
	return cost
}

func (s *shipmentService) Activity(ctx context.Context) ([]model.ActivityEntry, error) {
	return s.activityRepo.Entries(ctx, repository.StreamShipping)
}

func (s *shipmentService) pushActivity(ctx context.Context, kind, message string, meta map[string]interface{}) {
	details := map[string]interface{}{"type": kind, "message": message}
	for k, v := range meta {
		details[k] = v
	}
	_ = s.activityRepo.Push(ctx, repository.StreamShipping, model.ActivityEntry{
		ID:        "ACT-" + uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Action:    message,
		Details:   details,
	})
}

func buildShipmentItems(reqs []dto.ShipmentItemRequest) []model.ShipmentItem {
	items := make([]model.ShipmentItem, 0, len(reqs))
	for _, ir := range reqs {
		items = append(items, model.ShipmentItem{
			ProductID: ir.ProductID,
			SKU:       ir.SKU,
			Name:      ir.Name,
			Qty:       ir.Qty,
			WeightKg:  ir.WeightKg,
			Price:     ir.Price,
			VariantID: ir.VariantID,
		})
	}
	return items
}
