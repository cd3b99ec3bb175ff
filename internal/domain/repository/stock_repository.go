package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar stock por producto+bodega (DIP).
// Get y GetForUpdate devuelven un Stock con cantidad cero cuando no hay fila,
// nunca nil: los mutadores pueden operar sin caso especial.
type StockRepository interface {
	Get(productID, warehouseID string) (*entity.Stock, error)
	// GetForUpdate obtiene el stock bloqueando la fila (SELECT FOR UPDATE) para
	// mutaciones dentro de una transacción.
	GetForUpdate(productID, warehouseID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	ListByWarehouse(warehouseID string) ([]*entity.Stock, error)
	// TotalsByCompany devuelve el stock actual por producto (suma de todas las
	// bodegas de la empresa). Base del estado derivado y de los KPIs.
	TotalsByCompany(companyID string) (map[string]decimal.Decimal, error)
}
