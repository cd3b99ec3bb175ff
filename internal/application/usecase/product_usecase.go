// Package usecase contiene los casos de uso CRUD del catálogo:
// productos, bodegas y proveedores.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/inventory"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// ProductUseCase maneja el catálogo de productos. Las respuestas incluyen el
// stock actual (suma de bodegas) y el estado derivado con inventory.StatusFor.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, stockRepo repository.StockRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, stockRepo: stockRepo}
}

// Create registra un producto nuevo. El SKU es único por empresa.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := strings.TrimSpace(req.SKU)
	name := strings.TrimSpace(req.Name)
	if sku == "" || name == "" || strings.TrimSpace(req.Unit) == "" {
		return nil, fmt.Errorf("%w: sku, name y unit son obligatorios", domain.ErrInvalidInput)
	}
	if req.MinStock.IsNegative() || req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: min_stock y price no pueden ser negativos", domain.ErrInvalidInput)
	}
	if req.MaxStock.IsPositive() && req.MaxStock.LessThan(req.MinStock) {
		return nil, fmt.Errorf("%w: max_stock no puede ser menor que min_stock", domain.ErrInvalidInput)
	}

	existing, err := uc.productRepo.GetByCompanyAndSKU(companyID, sku)
	if err != nil {
		return nil, fmt.Errorf("error verificando SKU: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: SKU %s", domain.ErrDuplicate, sku)
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.NewString(),
		CompanyID:   companyID,
		SKU:         sku,
		Name:        name,
		Description: req.Description,
		Category:    req.Category,
		Unit:        strings.TrimSpace(req.Unit),
		MinStock:    req.MinStock,
		MaxStock:    req.MaxStock,
		Price:       req.Price,
		SupplierID:  req.SupplierID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, fmt.Errorf("error creando producto: %w", err)
	}

	resp := toProductResponse(product, nil)
	return &resp, nil
}

// GetByID devuelve un producto con su stock actual.
func (uc *ProductUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}
	totals, err := uc.stockRepo.TotalsByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("error consultando stock: %w", err)
	}
	resp := toProductResponse(product, totals)
	return &resp, nil
}

const statusScanPageSize = 500

// List devuelve el catálogo filtrado. category y search se filtran en el
// repositorio; status se filtra aquí porque es un valor derivado. Con filtro
// de status la paginación se aplica después de filtrar, recorriendo el
// catálogo completo: paginar antes dejaría páginas cortas habiendo más
// coincidencias adelante.
func (uc *ProductUseCase) List(ctx context.Context, companyID string, filter repository.ProductFilter, status string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	totals, err := uc.stockRepo.TotalsByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("error consultando stock: %w", err)
	}

	if status == "" {
		products, err := uc.productRepo.ListByCompany(companyID, filter, page.Limit, page.Offset)
		if err != nil {
			return nil, fmt.Errorf("error listando productos: %w", err)
		}
		items := make([]dto.ProductResponse, 0, len(products))
		for _, p := range products {
			items = append(items, toProductResponse(p, totals))
		}
		return &dto.ProductListResponse{
			Items: items,
			Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
		}, nil
	}

	matched := make([]dto.ProductResponse, 0)
	for offset := 0; ; offset += statusScanPageSize {
		products, err := uc.productRepo.ListByCompany(companyID, filter, statusScanPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("error listando productos: %w", err)
		}
		for _, p := range products {
			resp := toProductResponse(p, totals)
			if resp.Status == status {
				matched = append(matched, resp)
			}
		}
		if len(products) < statusScanPageSize {
			break
		}
	}

	start := page.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if page.Limit > 0 && start+page.Limit < end {
		end = start + page.Limit
	}
	return &dto.ProductListResponse{
		Items: matched[start:end],
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update aplica una actualización parcial. El stock no se toca aquí:
// solo cambia vía movimientos.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.getOwned(companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Unit != nil {
		if strings.TrimSpace(*req.Unit) == "" {
			return nil, fmt.Errorf("%w: unit no puede quedar vacío", domain.ErrInvalidInput)
		}
		product.Unit = strings.TrimSpace(*req.Unit)
	}
	if req.MinStock != nil {
		if req.MinStock.IsNegative() {
			return nil, fmt.Errorf("%w: min_stock no puede ser negativo", domain.ErrInvalidInput)
		}
		product.MinStock = *req.MinStock
	}
	if req.MaxStock != nil {
		product.MaxStock = *req.MaxStock
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
		}
		product.Price = *req.Price
	}
	if req.SupplierID != nil {
		product.SupplierID = *req.SupplierID
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("error actualizando producto: %w", err)
	}

	totals, err := uc.stockRepo.TotalsByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("error consultando stock: %w", err)
	}
	resp := toProductResponse(product, totals)
	return &resp, nil
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.getOwned(companyID, id); err != nil {
		return err
	}
	if err := uc.productRepo.Delete(id); err != nil {
		return fmt.Errorf("error eliminando producto: %w", err)
	}
	return nil
}

func (uc *ProductUseCase) getOwned(companyID, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error consultando producto: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func toProductResponse(p *entity.Product, totals map[string]decimal.Decimal) dto.ProductResponse {
	current := decimal.Zero
	if totals != nil {
		current = totals[p.ID]
	}
	return dto.ProductResponse{
		ID:           p.ID,
		CompanyID:    p.CompanyID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Unit:         p.Unit,
		MinStock:     p.MinStock,
		MaxStock:     p.MaxStock,
		Price:        p.Price,
		SupplierID:   p.SupplierID,
		CurrentStock: current,
		Status:       inventory.StatusFor(current, p.MinStock),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
