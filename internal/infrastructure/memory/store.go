// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Se usa en modo demo (APP_DEMO=true) y como fixture en tests: misma
// semántica que los repositorios de PostgreSQL, sin base de datos.
package memory

import (
	"sync"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// Store es el estado compartido por todos los repositorios en memoria.
// Los slices conservan el orden de inserción, que es el orden de catálogo
// que ven los listados.
type Store struct {
	mu sync.RWMutex

	companies  []*entity.Company
	users      []*entity.User
	products   []*entity.Product
	warehouses []*entity.Warehouse
	suppliers  []*entity.Supplier
	movements  []*entity.Movement
	resets     []*entity.PasswordReset

	stocks    map[string]*entity.Stock // productID|warehouseID
	sequences map[string]int64         // companyID|prefix
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		stocks:    make(map[string]*entity.Stock),
		sequences: make(map[string]int64),
	}
}

func stockKey(productID, warehouseID string) string {
	return productID + "|" + warehouseID
}

// Los clones evitan que los casos de uso muten el estado del Store a través
// de punteros compartidos: los repos guardan y devuelven copias.

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	return &c
}

func cloneWarehouse(w *entity.Warehouse) *entity.Warehouse {
	c := *w
	return &c
}

func cloneSupplier(s *entity.Supplier) *entity.Supplier {
	c := *s
	return &c
}

func cloneCompany(c *entity.Company) *entity.Company {
	cp := *c
	return &cp
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func cloneStock(s *entity.Stock) *entity.Stock {
	c := *s
	return &c
}

func cloneReset(r *entity.PasswordReset) *entity.PasswordReset {
	c := *r
	if r.ConsumedAt != nil {
		t := *r.ConsumedAt
		c.ConsumedAt = &t
	}
	return &c
}

func cloneMovement(m *entity.Movement) *entity.Movement {
	c := *m
	if m.CompletedAt != nil {
		t := *m.CompletedAt
		c.CompletedAt = &t
	}
	c.Items = make([]entity.MovementItem, len(m.Items))
	copy(c.Items, m.Items)
	return &c
}
