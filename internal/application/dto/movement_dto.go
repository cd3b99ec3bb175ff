package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementItemRequest línea de un movimiento. Name, SKU y Unit NO se reciben:
// se copian del producto seleccionado (snapshot) al crear el documento.
type MovementItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"` // con signo en ajustes; positivo en el resto
	Reason    string          `json:"reason,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// CreateMovementRequest encabezado + líneas para crear un movimiento.
// Los campos de encabezado aplican según el tipo:
//
//	receipt:    supplier_id, warehouse_id, expected_date
//	delivery:   customer, address, warehouse_id, expected_date
//	transfer:   from_warehouse_id, to_warehouse_id, movement_date
//	adjustment: warehouse_id, adjustment_type, movement_date, reason por línea
type CreateMovementRequest struct {
	Kind            string                `json:"kind"`
	Status          string                `json:"status"` // draft o pending
	SupplierID      string                `json:"supplier_id,omitempty"`
	Customer        string                `json:"customer,omitempty"`
	Address         string                `json:"address,omitempty"`
	WarehouseID     string                `json:"warehouse_id,omitempty"`
	FromWarehouseID string                `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   string                `json:"to_warehouse_id,omitempty"`
	AdjustmentType  string                `json:"adjustment_type,omitempty"`
	ExpectedDate    time.Time             `json:"expected_date,omitempty"`
	MovementDate    time.Time             `json:"movement_date,omitempty"`
	Notes           string                `json:"notes,omitempty"`
	Items           []MovementItemRequest `json:"items"`
}

// UpdateMovementStatusRequest transición simple de estado (completed / cancelled).
type UpdateMovementStatusRequest struct {
	Status string `json:"status"`
}

// MovementItemResponse línea con el snapshot del producto.
type MovementItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason,omitempty"`
	Notes     string          `json:"notes,omitempty"`
}

// MovementResponse documento de movimiento completo.
type MovementResponse struct {
	ID              string                 `json:"id"`
	CompanyID       string                 `json:"company_id"`
	Number          string                 `json:"number"`
	Kind            string                 `json:"kind"`
	Status          string                 `json:"status"`
	SupplierID      string                 `json:"supplier_id,omitempty"`
	Customer        string                 `json:"customer,omitempty"`
	Address         string                 `json:"address,omitempty"`
	WarehouseID     string                 `json:"warehouse_id,omitempty"`
	FromWarehouseID string                 `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   string                 `json:"to_warehouse_id,omitempty"`
	AdjustmentType  string                 `json:"adjustment_type,omitempty"`
	ExpectedDate    *time.Time             `json:"expected_date,omitempty"`
	MovementDate    *time.Time             `json:"movement_date,omitempty"`
	CompletedAt     *time.Time             `json:"completed_at,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	Items           []MovementItemResponse `json:"items"`
	CreatedAt       time.Time              `json:"created_at"`
	CreatedBy       string                 `json:"created_by"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
