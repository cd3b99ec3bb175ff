package inventory

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad entre el documento de movimiento y el stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// DocumentData datos resueltos para imprimir un movimiento (nombres en vez de IDs).
type DocumentData struct {
	Movement      *entity.Movement
	CompanyName   string
	SupplierName  string            // receipt
	WarehouseName map[string]string // id -> nombre, para bodega / origen / destino
}

// MovementPDFGenerator genera la representación imprimible de un movimiento
// (nota de entrega, recibo de bodega, orden de traslado, acta de ajuste).
type MovementPDFGenerator interface {
	GenerateMovementPDF(ctx context.Context, data DocumentData) ([]byte, error)
}
