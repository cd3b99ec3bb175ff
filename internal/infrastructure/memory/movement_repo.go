package memory

import (
	"sort"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// Orden de concatenación del feed de actividad ante fechas iguales:
// recibos, entregas, traslados, ajustes.
var kindConcatOrder = map[string]int{
	entity.MovementKindReceipt:    0,
	entity.MovementKindDelivery:   1,
	entity.MovementKindTransfer:   2,
	entity.MovementKindAdjustment: 3,
}

// MovementRepo implementa repository.MovementRepository en memoria.
type MovementRepo struct {
	store *Store
}

// NewMovementRepo construye el repositorio.
func NewMovementRepo(store *Store) *MovementRepo {
	return &MovementRepo{store: store}
}

func (r *MovementRepo) Create(movement *entity.Movement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.movements = append(r.store.movements, cloneMovement(movement))
	return nil
}

func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, m := range r.store.movements {
		if m.ID == id {
			return cloneMovement(m), nil
		}
	}
	return nil, nil
}

func (r *MovementRepo) UpdateStatus(movement *entity.Movement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, m := range r.store.movements {
		if m.ID == movement.ID {
			r.store.movements[i] = cloneMovement(movement)
			return nil
		}
	}
	return nil
}

func (r *MovementRepo) ListByCompany(companyID string, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*entity.Movement, 0)
	for _, m := range r.store.movements {
		if m.CompanyID != companyID {
			continue
		}
		if filter.Kind != "" && m.Kind != filter.Kind {
			continue
		}
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		matched = append(matched, m)
	}

	// Más recientes primero, como el listado de PostgreSQL.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if offset >= len(matched) {
		return []*entity.Movement{}, nil
	}
	end := len(matched)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*entity.Movement, 0, end-offset)
	for _, m := range matched[offset:end] {
		out = append(out, cloneMovement(m))
	}
	return out, nil
}

func (r *MovementRepo) CountPendingByCompany(companyID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	count := 0
	for _, m := range r.store.movements {
		if m.CompanyID == companyID && m.Status == entity.MovementStatusPending {
			count++
		}
	}
	return count, nil
}

func (r *MovementRepo) ListRecentByCompany(companyID string, limit int) ([]*entity.Movement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*entity.Movement, 0)
	for _, m := range r.store.movements {
		if m.CompanyID == companyID {
			matched = append(matched, m)
		}
	}

	// Concatenación por tipo y luego orden estable por fecha descendente:
	// ante fechas iguales sobrevive el orden recibos, entregas, traslados, ajustes.
	sort.SliceStable(matched, func(i, j int) bool {
		return kindConcatOrder[matched[i].Kind] < kindConcatOrder[matched[j].Kind]
	})
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	out := make([]*entity.Movement, 0, len(matched))
	for _, m := range matched {
		out = append(out, cloneMovement(m))
	}
	return out, nil
}
