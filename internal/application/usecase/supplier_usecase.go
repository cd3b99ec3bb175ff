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
	"github.com/jhoicas/stocktrack-api/internal/domain/validation"
)

// SupplierUseCase maneja los proveedores de la empresa.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// Create registra un proveedor nuevo.
func (uc *SupplierUseCase) Create(ctx context.Context, companyID string, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	if req.Email != "" {
		if r := validation.Email(req.Email, nil); !r.Valid {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, r.Message)
		}
	}

	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Name:      name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, fmt.Errorf("error creando proveedor: %w", err)
	}
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// GetByID devuelve un proveedor de la empresa.
func (uc *SupplierUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// List devuelve los proveedores de la empresa.
func (uc *SupplierUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.SupplierListResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.supplierRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("error listando proveedores: %w", err)
	}
	items := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		items = append(items, toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update aplica una actualización parcial.
func (uc *SupplierUseCase) Update(ctx context.Context, companyID, id string, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		supplier.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		if *req.Email != "" {
			if r := validation.Email(*req.Email, nil); !r.Valid {
				return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, r.Message)
			}
		}
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	supplier.UpdatedAt = time.Now()

	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, fmt.Errorf("error actualizando proveedor: %w", err)
	}
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.getOwned(companyID, id); err != nil {
		return err
	}
	if err := uc.supplierRepo.Delete(id); err != nil {
		return fmt.Errorf("error eliminando proveedor: %w", err)
	}
	return nil
}

func (uc *SupplierUseCase) getOwned(companyID, id string) (*entity.Supplier, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error consultando proveedor: %w", err)
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return supplier, nil
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
