package entity

import "time"

// Warehouse representa una bodega o centro de distribución donde se almacena inventario.
type Warehouse struct {
	ID               string
	CompanyID        string
	Name             string
	Location         string
	Capacity         int64
	CurrentOccupancy int64
	Manager          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
