package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	appinv "github.com/jhoicas/stocktrack-api/internal/application/inventory"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: caso de uso completo sobre los repositorios en memoria con el
// dataset de demostración. El dataset relevante:
//   - product-1 (Industrial Drill Bits Set): 150 en warehouse-1
//   - product-2 (Safety Helmets): 8 en warehouse-1
//   - product-4 (Paint Cans 5L): 0 en warehouse-1
//   - movement-a2: ajuste draft de +10 sobre product-4
// ──────────────────────────────────────────────────────────────────────────────

type movementFixture struct {
	uc        *appinv.SubmitMovementUseCase
	stockRepo *memory.StockRepo
}

func newMovementFixture(t *testing.T) *movementFixture {
	t.Helper()
	store := memory.NewStore()
	memory.Seed(store)
	return &movementFixture{
		uc: appinv.NewSubmitMovementUseCase(
			memory.NewTxRunner(store),
			memory.NewMovementRepo(store),
			memory.NewProductRepo(store),
			memory.NewWarehouseRepo(store),
			memory.NewSupplierRepo(store),
			memory.NewSequenceRepo(store),
		),
		stockRepo: memory.NewStockRepo(store),
	}
}

func (f *movementFixture) quantity(t *testing.T, productID, warehouseID string) decimal.Decimal {
	t.Helper()
	st, err := f.stockRepo.Get(productID, warehouseID)
	require.NoError(t, err)
	return st.Quantity
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ──────────────────────────────────────────────────────────────────────────────
// Create: validación de encabezado
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateMovement_TrasladoMismaBodega_Rechazado(t *testing.T) {
	f := newMovementFixture(t)

	_, err := f.uc.Create(context.Background(), memory.DemoCompanyID, memory.DemoUserID, dto.CreateMovementRequest{
		Kind:            entity.MovementKindTransfer,
		Status:          entity.MovementStatusPending,
		FromWarehouseID: "warehouse-1",
		ToWarehouseID:   "warehouse-1",
		MovementDate:    time.Now(),
		Items: []dto.MovementItemRequest{
			{ProductID: "product-1", Quantity: qty(5)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrSameWarehouse,
		"un traslado con origen igual a destino debe rechazarse")
}

func TestCreateMovement_ReciboSinProveedor_Rechazado(t *testing.T) {
	f := newMovementFixture(t)

	_, err := f.uc.Create(context.Background(), memory.DemoCompanyID, memory.DemoUserID, dto.CreateMovementRequest{
		Kind:         entity.MovementKindReceipt,
		WarehouseID:  "warehouse-1",
		ExpectedDate: time.Now(),
		Items: []dto.MovementItemRequest{
			{ProductID: "product-1", Quantity: qty(5)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateMovement_MotivoDeAjusteInvalido_Rechazado(t *testing.T) {
	f := newMovementFixture(t)

	_, err := f.uc.Create(context.Background(), memory.DemoCompanyID, memory.DemoUserID, dto.CreateMovementRequest{
		Kind:           entity.MovementKindAdjustment,
		WarehouseID:    "warehouse-1",
		AdjustmentType: "Correction",
		MovementDate:   time.Now(),
		Items: []dto.MovementItemRequest{
			{ProductID: "product-1", Quantity: qty(5), Reason: "porque sí"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"el motivo de ajuste debe pertenecer a la lista fija")
}

// Las líneas se devuelven en el orden en que se capturaron, no por ID
// (los IDs son UUIDs y su orden lexicográfico es arbitrario).
func TestCreateMovement_LineasConservanOrdenDeCaptura(t *testing.T) {
	f := newMovementFixture(t)

	orden := []string{"product-4", "product-1", "product-2"}
	out, err := f.uc.Create(context.Background(), memory.DemoCompanyID, memory.DemoUserID, dto.CreateMovementRequest{
		Kind:         entity.MovementKindDelivery,
		Status:       entity.MovementStatusDraft,
		Customer:     "ABC Construction Inc.",
		Address:      "123 Main St",
		WarehouseID:  "warehouse-1",
		ExpectedDate: time.Now(),
		Items: []dto.MovementItemRequest{
			{ProductID: orden[0], Quantity: qty(3)},
			{ProductID: orden[1], Quantity: qty(7)},
			{ProductID: orden[2], Quantity: qty(1)},
		},
	})
	require.NoError(t, err)

	fetched, err := f.uc.GetByID(memory.DemoCompanyID, out.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 3)
	for i, want := range orden {
		assert.Equal(t, want, fetched.Items[i].ProductID, "línea %d fuera de orden", i)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create: efecto sobre el stock
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateMovement_ReciboPendingAplicaStock(t *testing.T) {
	f := newMovementFixture(t)

	out, err := f.uc.Create(context.Background(), memory.DemoCompanyID, memory.DemoUserID, dto.CreateMovementRequest{
		Kind:         entity.MovementKindReceipt,
		Status:       entity.MovementStatusPending,
		SupplierID:   "supplier-1",
		WarehouseID:  "warehouse-1",
		ExpectedDate: time.Now(),
		Items: []dto.MovementItemRequest{
			{ProductID: "product-1", Quantity: qty(50)},
		},
	})
	require.NoError(t, err)

	// El consecutivo de muestra llega a RCP-000002, el siguiente es 3.
	assert.Equal(t, "RCP-000003", out.Number)
	assert.Equal(t, entity.MovementStatusPending, out.Status)

	// Snapshot del producto copiado a la línea, nunca recibido del cliente.
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Industrial Drill Bits Set", out.Items[0].Name)
	assert.Equal(t, "SKU-1234", out.Items[0].SKU)
	assert.Equal(t, "sets", out.Items[0].Unit)

	assert.True(t, f.quantity(t, "product-1", "warehouse-1").Equal(qty(200)),
		"el recibo pending debe sumar 50 al stock inicial de 150")
}

func TestCreateMovement_EntregaSinStock_Rechazada(t *testing.T) {
	f := newMovementFixture(t)

	// product-2 tiene solo 8 unidades en warehouse-1.
	_, err := f.uc.Create(context.Background(), memory.DemoCompanyID, memory.DemoUserID, dto.CreateMovementRequest{
		Kind:         entity.MovementKindDelivery,
		Status:       entity.MovementStatusPending,
		Customer:     "ABC Construction Inc.",
		Address:      "123 Main Street, New York, NY",
		WarehouseID:  "warehouse-1",
		ExpectedDate: time.Now(),
		Items: []dto.MovementItemRequest{
			{ProductID: "product-2", Quantity: qty(9)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, f.quantity(t, "product-2", "warehouse-1").Equal(qty(8)),
		"el stock no debe cambiar cuando la transacción se revierte")
}

func TestCreateMovement_DraftNoMutaStock(t *testing.T) {
	f := newMovementFixture(t)

	// Un draft persiste el documento sin verificar ni aplicar stock.
	out, err := f.uc.Create(context.Background(), memory.DemoCompanyID, memory.DemoUserID, dto.CreateMovementRequest{
		Kind:         entity.MovementKindDelivery,
		Status:       entity.MovementStatusDraft,
		Customer:     "XYZ Electrical Ltd.",
		Address:      "456 Industrial Avenue, Chicago, IL",
		WarehouseID:  "warehouse-1",
		ExpectedDate: time.Now(),
		Items: []dto.MovementItemRequest{
			{ProductID: "product-2", Quantity: qty(9001)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementStatusDraft, out.Status)

	assert.True(t, f.quantity(t, "product-2", "warehouse-1").Equal(qty(8)))
}

func TestCreateMovement_TrasladoPendingMueveEntreBodegas(t *testing.T) {
	f := newMovementFixture(t)

	_, err := f.uc.Create(context.Background(), memory.DemoCompanyID, memory.DemoUserID, dto.CreateMovementRequest{
		Kind:            entity.MovementKindTransfer,
		Status:          entity.MovementStatusPending,
		FromWarehouseID: "warehouse-1",
		ToWarehouseID:   "warehouse-2",
		MovementDate:    time.Now(),
		Items: []dto.MovementItemRequest{
			{ProductID: "product-1", Quantity: qty(25)},
		},
	})
	require.NoError(t, err)

	assert.True(t, f.quantity(t, "product-1", "warehouse-1").Equal(qty(125)))
	assert.True(t, f.quantity(t, "product-1", "warehouse-2").Equal(qty(25)))
}

func TestCreateMovement_AjusteNegativoVerificaDisponibilidad(t *testing.T) {
	f := newMovementFixture(t)

	_, err := f.uc.Create(context.Background(), memory.DemoCompanyID, memory.DemoUserID, dto.CreateMovementRequest{
		Kind:           entity.MovementKindAdjustment,
		Status:         entity.MovementStatusPending,
		WarehouseID:    "warehouse-1",
		AdjustmentType: "Damage",
		MovementDate:   time.Now(),
		Items: []dto.MovementItemRequest{
			{ProductID: "product-2", Quantity: qty(-50), Reason: "Damaged goods"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"un ajuste negativo mayor al disponible debe rechazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit y transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitDraft_AplicaStockYPasaAPending(t *testing.T) {
	f := newMovementFixture(t)

	// movement-a2 del dataset: ajuste draft de +10 sobre product-4 (stock 0).
	out, err := f.uc.Submit(context.Background(), memory.DemoCompanyID, "movement-a2")
	require.NoError(t, err)

	assert.Equal(t, entity.MovementStatusPending, out.Status)
	assert.True(t, f.quantity(t, "product-4", "warehouse-1").Equal(qty(10)))
}

func TestSubmit_SoloDraftsSonSometibles(t *testing.T) {
	f := newMovementFixture(t)

	// movement-r2 ya está en pending.
	_, err := f.uc.Submit(context.Background(), memory.DemoCompanyID, "movement-r2")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSubmit_MovimientoDeOtraEmpresa_Prohibido(t *testing.T) {
	f := newMovementFixture(t)

	_, err := f.uc.Submit(context.Background(), "otra-empresa", "movement-a2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateStatus_PendingACompleted(t *testing.T) {
	f := newMovementFixture(t)

	out, err := f.uc.UpdateStatus(context.Background(), memory.DemoCompanyID, "movement-r2", entity.MovementStatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, entity.MovementStatusCompleted, out.Status)
	require.NotNil(t, out.CompletedAt, "completar debe sellar la fecha de completado")
}

func TestUpdateStatus_CompletedEsTerminal(t *testing.T) {
	f := newMovementFixture(t)

	// movement-r1 ya está completado.
	_, err := f.uc.UpdateStatus(context.Background(), memory.DemoCompanyID, "movement-r1", entity.MovementStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateStatus_DraftACancelled(t *testing.T) {
	f := newMovementFixture(t)

	out, err := f.uc.UpdateStatus(context.Background(), memory.DemoCompanyID, "movement-a2", entity.MovementStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.MovementStatusCancelled, out.Status)
}
