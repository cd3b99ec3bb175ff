package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// ProductFilter criterios de listado del catálogo. Status se filtra sobre el
// estado derivado, por lo que lo aplica el caso de uso, no el repositorio.
type ProductFilter struct {
	Category string
	Search   string // busca en nombre y SKU
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByCompany(companyID string, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
