package entity

import "time"

// Supplier representa un proveedor de productos (origen de los recibos de stock).
type Supplier struct {
	ID        string
	CompanyID string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
