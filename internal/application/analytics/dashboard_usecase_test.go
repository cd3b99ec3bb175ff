package analytics_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktrack-api/internal/application/analytics"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/inventory"
	"github.com/jhoicas/stocktrack-api/internal/infrastructure/memory"
)

// El dataset de demostración produce un dashboard conocido:
//   - 10 productos: 6 in-stock, 3 low-stock (p2, p3, p8), 1 out-of-stock (p4)
//   - 3 movimientos pending (RCP-000002, DLV-000002, TRF-000002)
//   - valor total del stock: Σ stock_actual × precio = 18190.88
func newDashboard(t *testing.T) *dto.DashboardResponse {
	t.Helper()
	store := memory.NewStore()
	memory.Seed(store)

	uc := analytics.NewDashboardUseCase(
		memory.NewProductRepo(store),
		memory.NewStockRepo(store),
		memory.NewMovementRepo(store),
		memory.NewSupplierRepo(store),
	)
	out, err := uc.GetDashboard(context.Background(), memory.DemoCompanyID)
	require.NoError(t, err)
	return out
}

func TestDashboard_KPIs(t *testing.T) {
	out := newDashboard(t)

	assert.Equal(t, 10, out.KPIs.TotalProducts)
	assert.Equal(t, 6, out.KPIs.InStockItems)
	assert.Equal(t, 3, out.KPIs.LowStockItems)
	assert.Equal(t, 1, out.KPIs.OutOfStockItems)
	assert.Equal(t, 3, out.KPIs.PendingOperations)
	assert.Equal(t, "18190.88", out.KPIs.TotalStockValue.StringFixed(2))
}

// Los KPIs deben agregar el catálogo completo aunque supere una página
// de lectura del repositorio.
func TestDashboard_CatalogoGrandeSeAgregaCompleto(t *testing.T) {
	store := memory.NewStore()
	memory.Seed(store)

	productRepo := memory.NewProductRepo(store)
	const extras = 1200
	for i := 0; i < extras; i++ {
		require.NoError(t, productRepo.Create(&entity.Product{
			ID:        fmt.Sprintf("bulk-product-%04d", i),
			CompanyID: memory.DemoCompanyID,
			SKU:       fmt.Sprintf("SKU-BULK-%04d", i),
			Name:      fmt.Sprintf("Bulk Item %04d", i),
			Unit:      "pcs",
		}))
	}

	uc := analytics.NewDashboardUseCase(
		productRepo,
		memory.NewStockRepo(store),
		memory.NewMovementRepo(store),
		memory.NewSupplierRepo(store),
	)
	out, err := uc.GetDashboard(context.Background(), memory.DemoCompanyID)
	require.NoError(t, err)

	assert.Equal(t, 10+extras, out.KPIs.TotalProducts)
	suma := out.KPIs.InStockItems + out.KPIs.LowStockItems + out.KPIs.OutOfStockItems
	assert.Equal(t, out.KPIs.TotalProducts, suma)
}

// Los conteos por estado siempre deben sumar el total de productos.
func TestDashboard_ConteosSumanElTotal(t *testing.T) {
	out := newDashboard(t)

	suma := out.KPIs.InStockItems + out.KPIs.LowStockItems + out.KPIs.OutOfStockItems
	assert.Equal(t, out.KPIs.TotalProducts, suma)
}

func TestDashboard_ActividadReciente(t *testing.T) {
	out := newDashboard(t)

	require.Len(t, out.RecentActivities, 5, "el feed muestra como máximo 5 entradas")

	// Orden descendente por fecha de creación; ante fechas iguales se conserva
	// el orden recibos, entregas, traslados, ajustes (RCP-000002 y TRF-000001
	// comparten el 2025-11-16).
	numbers := make([]string, 0, len(out.RecentActivities))
	for _, a := range out.RecentActivities {
		numbers = append(numbers, a.Number)
	}
	assert.Equal(t, []string{"DLV-000002", "DLV-000001", "TRF-000002", "RCP-000002", "TRF-000001"}, numbers)

	descriptions := make([]string, 0, len(out.RecentActivities))
	for _, a := range out.RecentActivities {
		descriptions = append(descriptions, a.Description)
	}
	assert.Equal(t, []string{
		"Delivered 30 units to XYZ Electrical Ltd.",
		"Delivered 65 units to ABC Construction Inc.",
		"Transferred 25 units",
		"Received 130 units from SafeGuard Corp.",
		"Transferred 50 units",
	}, descriptions)
}

func TestDashboard_StockBajoEnOrdenDeCatalogo(t *testing.T) {
	out := newDashboard(t)

	// p2, p3, p4 y p8 están en atención; se listan en el orden del catálogo,
	// sin reordenar por severidad.
	require.Len(t, out.LowStockProducts, 4)

	assert.Equal(t, "SKU-5678", out.LowStockProducts[0].SKU)
	assert.Equal(t, inventory.StatusLowStock, out.LowStockProducts[0].Status)

	assert.Equal(t, "SKU-9012", out.LowStockProducts[1].SKU)
	assert.Equal(t, inventory.StatusLowStock, out.LowStockProducts[1].Status)

	assert.Equal(t, "SKU-3456", out.LowStockProducts[2].SKU)
	assert.Equal(t, inventory.StatusOutOfStock, out.LowStockProducts[2].Status)

	assert.Equal(t, "SKU-0123", out.LowStockProducts[3].SKU)
	assert.Equal(t, inventory.StatusLowStock, out.LowStockProducts[3].Status)
}
