package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementKindReceipt    = "receipt"    // entrada desde proveedor
	MovementKindDelivery   = "delivery"   // salida hacia cliente
	MovementKindTransfer   = "transfer"   // traslado entre bodegas
	MovementKindAdjustment = "adjustment" // corrección manual (cantidad con signo)
)

// Estados del ciclo de vida de un movimiento.
// Solo la transición draft -> pending tiene lógica de negocio (aplica stock);
// completed y cancelled son estados terminales sin efecto adicional.
const (
	MovementStatusDraft     = "draft"
	MovementStatusPending   = "pending"
	MovementStatusCompleted = "completed"
	MovementStatusCancelled = "cancelled"
)

// Prefijos del número de negocio por tipo de movimiento (ej. "RCP-000123").
const (
	NumberPrefixReceipt    = "RCP"
	NumberPrefixDelivery   = "DLV"
	NumberPrefixTransfer   = "TRF"
	NumberPrefixAdjustment = "ADJ"
)

// NumberPrefixFor devuelve el prefijo del número de negocio para un tipo de movimiento.
func NumberPrefixFor(kind string) string {
	switch kind {
	case MovementKindReceipt:
		return NumberPrefixReceipt
	case MovementKindDelivery:
		return NumberPrefixDelivery
	case MovementKindTransfer:
		return NumberPrefixTransfer
	case MovementKindAdjustment:
		return NumberPrefixAdjustment
	}
	return ""
}

// Motivos válidos para una línea de ajuste.
var AdjustmentReasons = []string{
	"Damaged goods",
	"Expired items",
	"Inventory count correction",
	"Product recall",
	"Quality control issue",
	"Other",
}

// ValidAdjustmentReason verifica que el motivo pertenezca a la lista fija.
func ValidAdjustmentReason(reason string) bool {
	for _, r := range AdjustmentReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// MovementItem es una línea de movimiento. Name, SKU y Unit son una copia (snapshot)
// del producto al momento de armar la línea; Unit nunca se digita aparte, con lo que
// la invariante unit == product.Unit se cumple por construcción.
type MovementItem struct {
	ID         string
	MovementID string
	ProductID  string
	Name       string
	SKU        string
	Unit       string
	Quantity   decimal.Decimal // con signo en ajustes (positivo aumenta, negativo disminuye); positivo en el resto
	Reason     string          // solo ajustes, de AdjustmentReasons
	Notes      string
}

// Movement representa un documento de movimiento de stock: recibo, entrega,
// traslado o ajuste. El encabezado varía por tipo; los campos que no aplican
// quedan vacíos.
type Movement struct {
	ID        string
	CompanyID string
	Number    string // número de negocio inmutable, asignado al crear
	Kind      string
	Status    string

	// Encabezado por tipo:
	SupplierID      string // receipt
	Customer        string // delivery
	Address         string // delivery
	WarehouseID     string // receipt, delivery, adjustment
	FromWarehouseID string // transfer
	ToWarehouseID   string // transfer
	AdjustmentType  string // adjustment: Damage, Correction...

	ExpectedDate time.Time  // receipt, delivery
	MovementDate time.Time  // transfer (fecha de traslado), adjustment (fecha de ajuste)
	CompletedAt  *time.Time // cuando pasa a completed

	Notes string
	Items []MovementItem

	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
}

// TotalQuantity suma las cantidades de las líneas (valor absoluto en ajustes).
// Usado por el feed de actividad ("Received 70 units from...").
func (m *Movement) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, it := range m.Items {
		total = total.Add(it.Quantity.Abs())
	}
	return total
}
