// Package analytics contiene el caso de uso del dashboard operativo:
// KPIs de inventario, feed de actividad reciente y productos con stock bajo.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/inventory"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

const (
	recentActivitiesLimit = 5  // entradas del feed de actividad
	lowStockLimit         = 10 // productos en el widget de stock bajo
	catalogPageSize       = 500
)

// DashboardUseCase construye la respuesta del dashboard. El estado de cada
// producto se deriva con inventory.StatusFor sobre el stock actual: la misma
// función pura que usa el catálogo, para que ambos nunca discrepen.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	stockRepo    repository.StockRepository
	movementRepo repository.MovementRepository
	supplierRepo repository.SupplierRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	movementRepo repository.MovementRepository,
	supplierRepo repository.SupplierRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:  productRepo,
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		supplierRepo: supplierRepo,
	}
}

// GetDashboard arma KPIs, actividad reciente y stock bajo para la empresa.
//
// Tres lecturas en paralelo:
//  1. catálogo + totales de stock  → KPIs y widget de stock bajo
//  2. conteo de pendientes          → KPI de operaciones pendientes
//  3. movimientos recientes         → feed de actividad
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, companyID string) (*dto.DashboardResponse, error) {
	type catalogResult struct {
		products []*entity.Product
		totals   map[string]decimal.Decimal
		err      error
	}
	type pendingResult struct {
		count int
		err   error
	}
	type recentResult struct {
		movements []*entity.Movement
		err       error
	}

	catalogCh := make(chan catalogResult, 1)
	pendingCh := make(chan pendingResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		// Los KPIs agregan el catálogo completo: se pagina hasta agotarlo.
		var products []*entity.Product
		for offset := 0; ; offset += catalogPageSize {
			pageItems, err := uc.productRepo.ListByCompany(companyID, repository.ProductFilter{}, catalogPageSize, offset)
			if err != nil {
				catalogCh <- catalogResult{err: err}
				return
			}
			products = append(products, pageItems...)
			if len(pageItems) < catalogPageSize {
				break
			}
		}
		totals, err := uc.stockRepo.TotalsByCompany(companyID)
		catalogCh <- catalogResult{products: products, totals: totals, err: err}
	}()
	go func() {
		count, err := uc.movementRepo.CountPendingByCompany(companyID)
		pendingCh <- pendingResult{count: count, err: err}
	}()
	go func() {
		movements, err := uc.movementRepo.ListRecentByCompany(companyID, recentActivitiesLimit)
		recentCh <- recentResult{movements: movements, err: err}
	}()

	catalog := <-catalogCh
	pending := <-pendingCh
	recent := <-recentCh

	if catalog.err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", catalog.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: operaciones pendientes: %w", pending.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: actividad reciente: %w", recent.err)
	}

	kpis, lowStock := uc.aggregateCatalog(catalog.products, catalog.totals)
	kpis.PendingOperations = pending.count

	activities, err := uc.buildActivities(recent.movements)
	if err != nil {
		return nil, fmt.Errorf("dashboard: actividad reciente: %w", err)
	}

	return &dto.DashboardResponse{
		KPIs:             kpis,
		RecentActivities: activities,
		LowStockProducts: lowStock,
	}, nil
}

// aggregateCatalog recorre el catálogo una sola vez: cuenta estados derivados,
// acumula el valor total del stock y recoge los productos en atención
// preservando el orden del catálogo (sin ordenar por severidad).
func (uc *DashboardUseCase) aggregateCatalog(
	products []*entity.Product,
	totals map[string]decimal.Decimal,
) (dto.KPIResponse, []dto.LowStockProductResponse) {
	kpis := dto.KPIResponse{
		TotalProducts:   len(products),
		TotalStockValue: decimal.Zero,
	}
	lowStock := make([]dto.LowStockProductResponse, 0, lowStockLimit)

	for _, p := range products {
		current := totals[p.ID]
		status := inventory.StatusFor(current, p.MinStock)
		switch status {
		case inventory.StatusLowStock:
			kpis.LowStockItems++
		case inventory.StatusOutOfStock:
			kpis.OutOfStockItems++
		default:
			kpis.InStockItems++
		}
		kpis.TotalStockValue = kpis.TotalStockValue.Add(current.Mul(p.Price))

		if status != inventory.StatusInStock && len(lowStock) < lowStockLimit {
			lowStock = append(lowStock, dto.LowStockProductResponse{
				ID:           p.ID,
				SKU:          p.SKU,
				Name:         p.Name,
				Unit:         p.Unit,
				CurrentStock: current,
				MinStock:     p.MinStock,
				Status:       status,
			})
		}
	}
	return kpis, lowStock
}

// buildActivities convierte movimientos en entradas del feed. El repositorio ya
// entrega el orden descendente por fecha de creación; ante fechas iguales se
// conserva el orden de concatenación (recibos, entregas, traslados, ajustes),
// que hoy es un artefacto y no una regla de negocio.
func (uc *DashboardUseCase) buildActivities(movements []*entity.Movement) ([]dto.ActivityResponse, error) {
	supplierNames := make(map[string]string)
	activities := make([]dto.ActivityResponse, 0, len(movements))
	for _, m := range movements {
		var description string
		switch m.Kind {
		case entity.MovementKindReceipt:
			name := supplierNames[m.SupplierID]
			if name == "" && m.SupplierID != "" {
				supplier, err := uc.supplierRepo.GetByID(m.SupplierID)
				if err != nil {
					return nil, err
				}
				if supplier != nil {
					name = supplier.Name
					supplierNames[m.SupplierID] = name
				}
			}
			description = fmt.Sprintf("Received %s units from %s", m.TotalQuantity(), name)
		case entity.MovementKindDelivery:
			description = fmt.Sprintf("Delivered %s units to %s", m.TotalQuantity(), m.Customer)
		case entity.MovementKindTransfer:
			description = fmt.Sprintf("Transferred %s units", m.TotalQuantity())
		case entity.MovementKindAdjustment:
			description = fmt.Sprintf("Stock adjustment: %s", m.AdjustmentType)
		}
		activities = append(activities, dto.ActivityResponse{
			ID:          m.ID,
			Kind:        m.Kind,
			Number:      m.Number,
			Description: description,
			Status:      m.Status,
			Time:        m.CreatedAt,
		})
	}
	return activities, nil
}
