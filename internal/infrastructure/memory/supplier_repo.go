package memory

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// SupplierRepo implementa repository.SupplierRepository en memoria.
type SupplierRepo struct {
	store *Store
}

// NewSupplierRepo construye el repositorio.
func NewSupplierRepo(store *Store) *SupplierRepo {
	return &SupplierRepo{store: store}
}

func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.suppliers = append(r.store.suppliers, cloneSupplier(supplier))
	return nil
}

func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, s := range r.store.suppliers {
		if s.ID == id {
			return cloneSupplier(s), nil
		}
	}
	return nil, nil
}

func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, s := range r.store.suppliers {
		if s.ID == supplier.ID {
			r.store.suppliers[i] = cloneSupplier(supplier)
			return nil
		}
	}
	return nil
}

func (r *SupplierRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*entity.Supplier, 0)
	for _, s := range r.store.suppliers {
		if s.CompanyID == companyID {
			matched = append(matched, s)
		}
	}
	if offset >= len(matched) {
		return []*entity.Supplier{}, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*entity.Supplier, 0, end-offset)
	for _, s := range matched[offset:end] {
		out = append(out, cloneSupplier(s))
	}
	return out, nil
}

func (r *SupplierRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, s := range r.store.suppliers {
		if s.ID == id {
			r.store.suppliers = append(r.store.suppliers[:i], r.store.suppliers[i+1:]...)
			return nil
		}
	}
	return nil
}
