package entity

import "time"

// Company representa una empresa (tenant). Todos los recursos cuelgan de una Company.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
