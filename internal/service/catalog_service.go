package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MichaelOwusu007/vdlpro/internal/dto"
	"github.com/MichaelOwusu007/vdlpro/internal/model"
	"github.com/MichaelOwusu007/vdlpro/internal/repository"

	"github.com/google/uuid"
)

// CatalogService manages the product and warehouse ledgers.
type CatalogService interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, req dto.ProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	Warehouses(ctx context.Context) ([]model.Warehouse, error)
	CreateWarehouse(ctx context.Context, req dto.WarehouseRequest) (*model.Warehouse, error)
	UpdateWarehouse(ctx context.Context, id string, req dto.WarehouseRequest) (*model.Warehouse, error)
	DeleteWarehouse(ctx context.Context, id string) error
}

type catalogService struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	activityRepo  repository.ActivityRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	activityRepo repository.ActivityRepository,
) CatalogService {
	return &catalogService{productRepo: productRepo, warehouseRepo: warehouseRepo, activityRepo: activityRepo}
}

func (s *catalogService) Products(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.All(ctx)
}

func (s *catalogService) Product(ctx context.Context, id string) (*model.Product, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req dto.ProductRequest) (*model.Product, error) {
	products, err := s.productRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	p := model.Product{
		ID:    "P-" + uuid.NewString(),
		SKU:   req.SKU,
		Name:  req.Name,
		Price: req.Price,
		Image: req.Image,
	}
	products = append(products, p)
	if err := s.productRepo.Save(ctx, products); err != nil {
		return nil, err
	}
	s.log(ctx, fmt.Sprintf("Created product %s", p.SKU), map[string]interface{}{"productId": p.ID})
	return &p, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) (*model.Product, error) {
	products, err := s.productRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i].SKU = req.SKU
		products[i].Name = req.Name
		products[i].Price = req.Price
		products[i].Image = req.Image
		if err := s.productRepo.Save(ctx, products); err != nil {
			return nil, err
		}
		s.log(ctx, fmt.Sprintf("Updated product %s", req.SKU), map[string]interface{}{"productId": id})
		return &products[i], nil
	}
	return nil, ErrProductNotFound
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	products, err := s.productRepo.All(ctx)
	if err != nil {
		return err
	}
	kept := products[:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrProductNotFound
	}
	if err := s.productRepo.Save(ctx, kept); err != nil {
		return err
	}
	s.log(ctx, fmt.Sprintf("Deleted product %s", id), map[string]interface{}{"productId": id})
	return nil
}

func (s *catalogService) Warehouses(ctx context.Context) ([]model.Warehouse, error) {
	return s.warehouseRepo.All(ctx)
}

func (s *catalogService) CreateWarehouse(ctx context.Context, req dto.WarehouseRequest) (*model.Warehouse, error) {
	warehouses, err := s.warehouseRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	w := model.Warehouse{
		ID:       "W-" + uuid.NewString(),
		Name:     req.Name,
		Location: req.Location,
		Capacity: req.Capacity,
	}
	warehouses = append(warehouses, w)
	if err := s.warehouseRepo.Save(ctx, warehouses); err != nil {
		return nil, err
	}
	s.log(ctx, fmt.Sprintf("Created warehouse %s", w.Name), map[string]interface{}{"warehouseId": w.ID})
	return &w, nil
}

func (s *catalogService) UpdateWarehouse(ctx context.Context, id string, req dto.WarehouseRequest) (*model.Warehouse, error) {
	warehouses, err := s.warehouseRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range warehouses {
		if warehouses[i].ID != id {
			continue
		}
		warehouses[i].Name = req.Name
		warehouses[i].Location = req.Location
		warehouses[i].Capacity = req.Capacity
		if err := s.warehouseRepo.Save(ctx, warehouses); err != nil {
			return nil, err
		}
		s.log(ctx, fmt.Sprintf("Updated warehouse %s", req.Name), map[string]interface{}{"warehouseId": id})
		return &warehouses[i], nil
	}
	return nil, ErrWarehouseNotFound
}

func (s *catalogService) DeleteWarehouse(ctx context.Context, id string) error {
	warehouses, err := s.warehouseRepo.All(ctx)
	if err != nil {
		return err
	}
	kept := warehouses[:0]
	found := false
	for _, w := range warehouses {
		if w.ID == id {
			found = true
			continue
		}
		kept = append(kept, w)
	}
	if !found {
		return ErrWarehouseNotFound
	}
	if err := s.warehouseRepo.Save(ctx, kept); err != nil {
		return err
	}
	s.log(ctx, fmt.Sprintf("Deleted warehouse %s", id), map[string]interface{}{"warehouseId": id})
	return nil
}

func (s *catalogService) log(ctx context.Context, action string, details map[string]interface{}) {
	_ = s.activityRepo.Push(ctx, repository.StreamGeneral, model.ActivityEntry{
		ID:        "ACT-" + uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Action:    action,
		Details:   details,
	})
}
