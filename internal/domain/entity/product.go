package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// El stock se maneja por bodega en Stock; el stock actual del producto es la suma.
// El estado (in-stock / low-stock / out-of-stock) NUNCA se almacena: se deriva
// con inventory.StatusFor a partir del stock actual y MinStock.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	Description string
	Category    string
	Unit        string          // unidad de medida: pcs, sets, rolls...
	MinStock    decimal.Decimal // umbral de stock bajo
	MaxStock    decimal.Decimal
	Price       decimal.Decimal // precio de venta
	SupplierID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
