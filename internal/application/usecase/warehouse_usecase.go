package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// WarehouseUseCase maneja las bodegas de la empresa.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(warehouseRepo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo}
}

// Create registra una bodega nueva.
func (uc *WarehouseUseCase) Create(ctx context.Context, companyID string, req dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	if req.Capacity < 0 || req.CurrentOccupancy < 0 {
		return nil, fmt.Errorf("%w: capacity y current_occupancy no pueden ser negativos", domain.ErrInvalidInput)
	}
	if req.Capacity > 0 && req.CurrentOccupancy > req.Capacity {
		return nil, fmt.Errorf("%w: current_occupancy excede capacity", domain.ErrInvalidInput)
	}

	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:               uuid.NewString(),
		CompanyID:        companyID,
		Name:             name,
		Location:         req.Location,
		Capacity:         req.Capacity,
		CurrentOccupancy: req.CurrentOccupancy,
		Manager:          req.Manager,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.warehouseRepo.Create(warehouse); err != nil {
		return nil, fmt.Errorf("error creando bodega: %w", err)
	}
	resp := toWarehouseResponse(warehouse)
	return &resp, nil
}

// GetByID devuelve una bodega de la empresa.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	resp := toWarehouseResponse(warehouse)
	return &resp, nil
}

// List devuelve las bodegas de la empresa.
func (uc *WarehouseUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.WarehouseListResponse, error) {
	page.DefaultPage()
	warehouses, err := uc.warehouseRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("error listando bodegas: %w", err)
	}
	items := make([]dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		items = append(items, toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update aplica una actualización parcial.
func (uc *WarehouseUseCase) Update(ctx context.Context, companyID, id string, req dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		warehouse.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		warehouse.Location = *req.Location
	}
	if req.Capacity != nil {
		if *req.Capacity < 0 {
			return nil, fmt.Errorf("%w: capacity no puede ser negativo", domain.ErrInvalidInput)
		}
		warehouse.Capacity = *req.Capacity
	}
	if req.CurrentOccupancy != nil {
		if *req.CurrentOccupancy < 0 {
			return nil, fmt.Errorf("%w: current_occupancy no puede ser negativo", domain.ErrInvalidInput)
		}
		warehouse.CurrentOccupancy = *req.CurrentOccupancy
	}
	if req.Manager != nil {
		warehouse.Manager = *req.Manager
	}
	warehouse.UpdatedAt = time.Now()

	if err := uc.warehouseRepo.Update(warehouse); err != nil {
		return nil, fmt.Errorf("error actualizando bodega: %w", err)
	}
	resp := toWarehouseResponse(warehouse)
	return &resp, nil
}

// Delete elimina una bodega.
func (uc *WarehouseUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.getOwned(companyID, id); err != nil {
		return err
	}
	if err := uc.warehouseRepo.Delete(id); err != nil {
		return fmt.Errorf("error eliminando bodega: %w", err)
	}
	return nil
}

func (uc *WarehouseUseCase) getOwned(companyID, id string) (*entity.Warehouse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error consultando bodega: %w", err)
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if warehouse.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return warehouse, nil
}

func toWarehouseResponse(w *entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		ID:               w.ID,
		CompanyID:        w.CompanyID,
		Name:             w.Name,
		Location:         w.Location,
		Capacity:         w.Capacity,
		CurrentOccupancy: w.CurrentOccupancy,
		Manager:          w.Manager,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}
