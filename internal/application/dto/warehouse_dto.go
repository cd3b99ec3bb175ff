package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name             string `json:"name"`
	Location         string `json:"location"`
	Capacity         int64  `json:"capacity"`
	CurrentOccupancy int64  `json:"current_occupancy"`
	Manager          string `json:"manager"`
}

// UpdateWarehouseRequest actualización parcial tipada.
type UpdateWarehouseRequest struct {
	Name             *string `json:"name"`
	Location         *string `json:"location"`
	Capacity         *int64  `json:"capacity"`
	CurrentOccupancy *int64  `json:"current_occupancy"`
	Manager          *string `json:"manager"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID               string    `json:"id"`
	CompanyID        string    `json:"company_id"`
	Name             string    `json:"name"`
	Location         string    `json:"location"`
	Capacity         int64     `json:"capacity"`
	CurrentOccupancy int64     `json:"current_occupancy"`
	Manager          string    `json:"manager"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
