// Package inventory contiene servicios de dominio puros del inventario:
// derivación de estado de stock y aritmética de disponibilidad.
package inventory

import "github.com/shopspring/decimal"

// Estados derivados de un producto según su stock actual.
const (
	StatusInStock    = "in-stock"
	StatusLowStock   = "low-stock"
	StatusOutOfStock = "out-of-stock"
)

// StatusFor deriva el estado de un producto a partir del stock actual y el mínimo.
// Es una función pura: el estado nunca se almacena ni se asigna directamente.
//
//	current == 0          -> out-of-stock
//	current <  minStock   -> low-stock
//	en otro caso          -> in-stock
func StatusFor(current, minStock decimal.Decimal) string {
	if current.LessThanOrEqual(decimal.Zero) {
		return StatusOutOfStock
	}
	if current.LessThan(minStock) {
		return StatusLowStock
	}
	return StatusInStock
}

// BelowMin indica si el producto está en estado de atención (low o out of stock).
func BelowMin(current, minStock decimal.Decimal) bool {
	s := StatusFor(current, minStock)
	return s == StatusLowStock || s == StatusOutOfStock
}

// Sufficient verifica que el stock disponible cubra la cantidad solicitada.
func Sufficient(available, requested decimal.Decimal) bool {
	return available.GreaterThanOrEqual(requested)
}
