package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo entrega consecutivos por empresa y prefijo con un UPSERT
// atómico: el RETURNING del incremento garantiza ausencia de colisiones
// bajo concurrencia sin bloqueos explícitos.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next devuelve el siguiente consecutivo para la empresa y el prefijo.
func (r *SequenceRepo) Next(companyID, prefix string) (int64, error) {
	query := `
		INSERT INTO movement_sequences (company_id, prefix, current)
		VALUES ($1, $2, 1)
		ON CONFLICT (company_id, prefix)
		DO UPDATE SET current = movement_sequences.current + 1
		RETURNING current`
	var current int64
	if err := r.q.QueryRow(context.Background(), query, companyID, prefix).Scan(&current); err != nil {
		return 0, fmt.Errorf("next sequence %s/%s: %w", companyID, prefix, err)
	}
	return current, nil
}
