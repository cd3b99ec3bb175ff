package memory

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// WarehouseRepo implementa repository.WarehouseRepository en memoria.
type WarehouseRepo struct {
	store *Store
}

// NewWarehouseRepo construye el repositorio.
func NewWarehouseRepo(store *Store) *WarehouseRepo {
	return &WarehouseRepo{store: store}
}

func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.warehouses = append(r.store.warehouses, cloneWarehouse(warehouse))
	return nil
}

func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, w := range r.store.warehouses {
		if w.ID == id {
			return cloneWarehouse(w), nil
		}
	}
	return nil, nil
}

func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, w := range r.store.warehouses {
		if w.ID == warehouse.ID {
			r.store.warehouses[i] = cloneWarehouse(warehouse)
			return nil
		}
	}
	return nil
}

func (r *WarehouseRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*entity.Warehouse, 0)
	for _, w := range r.store.warehouses {
		if w.CompanyID == companyID {
			matched = append(matched, w)
		}
	}
	if offset >= len(matched) {
		return []*entity.Warehouse{}, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*entity.Warehouse, 0, end-offset)
	for _, w := range matched[offset:end] {
		out = append(out, cloneWarehouse(w))
	}
	return out, nil
}

func (r *WarehouseRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, w := range r.store.warehouses {
		if w.ID == id {
			r.store.warehouses = append(r.store.warehouses[:i], r.store.warehouses[i+1:]...)
			return nil
		}
	}
	return nil
}
