package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/usecase"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/inventory"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
	"github.com/jhoicas/stocktrack-api/internal/infrastructure/memory"
)

func newProductFixture(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	store := memory.NewStore()
	memory.Seed(store)
	return usecase.NewProductUseCase(memory.NewProductRepo(store), memory.NewStockRepo(store))
}

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func TestProductCreate_Valido(t *testing.T) {
	uc := newProductFixture(t)

	out, err := uc.Create(context.Background(), memory.DemoCompanyID, dto.CreateProductRequest{
		SKU:      "SKU-NEW-01",
		Name:     "Wrench Set",
		Unit:     "sets",
		MinStock: d("10"),
		MaxStock: d("50"),
		Price:    d("29.99"),
	})
	require.NoError(t, err)

	assert.Equal(t, "SKU-NEW-01", out.SKU)
	assert.True(t, out.CurrentStock.IsZero(), "un producto nuevo arranca sin stock")
	assert.Equal(t, inventory.StatusOutOfStock, out.Status)
}

func TestProductCreate_SKUDuplicado_CaseInsensitive(t *testing.T) {
	uc := newProductFixture(t)

	// El dataset trae SKU-1234; la unicidad no distingue mayúsculas.
	_, err := uc.Create(context.Background(), memory.DemoCompanyID, dto.CreateProductRequest{
		SKU:  "sku-1234",
		Name: "Otro producto",
		Unit: "pcs",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CamposObligatorios(t *testing.T) {
	uc := newProductFixture(t)

	_, err := uc.Create(context.Background(), memory.DemoCompanyID, dto.CreateProductRequest{
		SKU:  "SKU-NEW-02",
		Name: "Sin unidad",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_MaxMenorQueMin_Rechazado(t *testing.T) {
	uc := newProductFixture(t)

	_, err := uc.Create(context.Background(), memory.DemoCompanyID, dto.CreateProductRequest{
		SKU:      "SKU-NEW-03",
		Name:     "Rango invertido",
		Unit:     "pcs",
		MinStock: d("50"),
		MaxStock: d("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductGetByID_IncluyeStockYEstadoDerivado(t *testing.T) {
	uc := newProductFixture(t)

	// product-2 (Safety Helmets): 8 unidades, mínimo 25 → low-stock.
	out, err := uc.GetByID(context.Background(), memory.DemoCompanyID, "product-2")
	require.NoError(t, err)

	assert.True(t, out.CurrentStock.Equal(d("8")))
	assert.Equal(t, inventory.StatusLowStock, out.Status)
}

func TestProductGetByID_DeOtraEmpresa_Prohibido(t *testing.T) {
	uc := newProductFixture(t)

	_, err := uc.GetByID(context.Background(), "otra-empresa", "product-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProductList_FiltroPorEstadoDerivado(t *testing.T) {
	uc := newProductFixture(t)

	out, err := uc.List(context.Background(), memory.DemoCompanyID,
		repository.ProductFilter{}, inventory.StatusOutOfStock, dto.PageRequest{})
	require.NoError(t, err)

	// Solo product-4 (Paint Cans) está agotado.
	require.Len(t, out.Items, 1)
	assert.Equal(t, "SKU-3456", out.Items[0].SKU)
}

// El filtro por status se aplica sobre el catálogo completo antes de paginar:
// una página pedida con limit=2 debe llenarse aunque las coincidencias estén
// repartidas por el catálogo.
func TestProductList_FiltroPorEstadoPaginaDespuesDeFiltrar(t *testing.T) {
	uc := newProductFixture(t)

	// Hay 3 productos low-stock en el dataset: product-2, product-3 y product-8.
	out, err := uc.List(context.Background(), memory.DemoCompanyID,
		repository.ProductFilter{}, inventory.StatusLowStock, dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, out.Items, 2, "la página debe llenarse con coincidencias de todo el catálogo")
	assert.Equal(t, "SKU-5678", out.Items[0].SKU)
	assert.Equal(t, "SKU-9012", out.Items[1].SKU)

	out, err = uc.List(context.Background(), memory.DemoCompanyID,
		repository.ProductFilter{}, inventory.StatusLowStock, dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "SKU-0123", out.Items[0].SKU)
}

func TestProductList_FiltroPorCategoria(t *testing.T) {
	uc := newProductFixture(t)

	out, err := uc.List(context.Background(), memory.DemoCompanyID,
		repository.ProductFilter{Category: "Tools"}, "", dto.PageRequest{})
	require.NoError(t, err)

	require.Len(t, out.Items, 3)
	for _, p := range out.Items {
		assert.Equal(t, "Tools", p.Category)
	}
}

func TestProductUpdate_Parcial(t *testing.T) {
	uc := newProductFixture(t)

	newPrice := d("99.90")
	out, err := uc.Update(context.Background(), memory.DemoCompanyID, "product-1", dto.UpdateProductRequest{
		Price: &newPrice,
	})
	require.NoError(t, err)

	assert.True(t, out.Price.Equal(newPrice))
	assert.Equal(t, "Industrial Drill Bits Set", out.Name, "los campos no enviados no cambian")
}

func TestProductUpdate_NombreVacio_Rechazado(t *testing.T) {
	uc := newProductFixture(t)

	empty := "   "
	_, err := uc.Update(context.Background(), memory.DemoCompanyID, "product-1", dto.UpdateProductRequest{
		Name: &empty,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc := newProductFixture(t)

	err := uc.Delete(context.Background(), memory.DemoCompanyID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
