package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, company_id, number, kind, status, supplier_id, customer, address,
	warehouse_id, from_warehouse_id, to_warehouse_id, adjustment_type,
	expected_date, movement_date, completed_at, notes, created_at, created_by, updated_at`

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
// El documento se persiste en movements + movement_items.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste el encabezado y las líneas del movimiento.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.CompanyID, movement.Number, movement.Kind, movement.Status,
		nullable(movement.SupplierID), movement.Customer, movement.Address,
		nullable(movement.WarehouseID), nullable(movement.FromWarehouseID), nullable(movement.ToWarehouseID),
		movement.AdjustmentType, nullTime(movement.ExpectedDate), nullTime(movement.MovementDate),
		movement.CompletedAt, movement.Notes, movement.CreatedAt, movement.CreatedBy, movement.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement: %w", err)
	}

	// line_number conserva el orden de captura; los IDs de línea son UUIDs.
	itemQuery := `
		INSERT INTO movement_items (id, movement_id, line_number, product_id, name, sku, unit, quantity, reason, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for i, item := range movement.Items {
		if _, err := r.q.Exec(context.Background(), itemQuery,
			item.ID, movement.ID, i, item.ProductID, item.Name, item.SKU, item.Unit,
			item.Quantity, item.Reason, item.Notes,
		); err != nil {
			return fmt.Errorf("insert movement item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un movimiento con sus líneas.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	if err := r.loadItems([]*entity.Movement{m}); err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateStatus actualiza el estado del documento (y completed_at al completar).
func (r *MovementRepo) UpdateStatus(movement *entity.Movement) error {
	query := `
		UPDATE movements SET status = $2, completed_at = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Status, movement.CompletedAt, movement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update movement status: %w", err)
	}
	return nil
}

// ListByCompany lista movimientos de la empresa, más recientes primero.
func (r *MovementRepo) ListByCompany(companyID string, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE company_id = $1`
	args := []any{companyID}
	pos := 2
	if filter.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", pos)
		args = append(args, filter.Kind)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	return r.queryMovements(query, args...)
}

// CountPendingByCompany cuenta los movimientos pending de todos los tipos.
func (r *MovementRepo) CountPendingByCompany(companyID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM movements WHERE company_id = $1 AND status = $2`,
		companyID, entity.MovementStatusPending,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending movements: %w", err)
	}
	return count, nil
}

// ListRecentByCompany devuelve los movimientos más recientes para el feed de
// actividad. Ante fechas iguales desempata por tipo en el orden recibos,
// entregas, traslados, ajustes.
func (r *MovementRepo) ListRecentByCompany(companyID string, limit int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + ` FROM movements
		WHERE company_id = $1
		ORDER BY created_at DESC,
			CASE kind
				WHEN 'receipt' THEN 0
				WHEN 'delivery' THEN 1
				WHEN 'transfer' THEN 2
				ELSE 3
			END ASC
		LIMIT $2`
	return r.queryMovements(query, companyID, limit)
}

func (r *MovementRepo) queryMovements(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadItems(list); err != nil {
		return nil, err
	}
	return list, nil
}

// loadItems carga las líneas de un lote de movimientos en una sola consulta.
func (r *MovementRepo) loadItems(movements []*entity.Movement) error {
	if len(movements) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Movement, len(movements))
	ids := make([]string, 0, len(movements))
	for _, m := range movements {
		byID[m.ID] = m
		ids = append(ids, m.ID)
	}

	query := `
		SELECT id, movement_id, product_id, name, sku, unit, quantity, reason, notes
		FROM movement_items WHERE movement_id = ANY($1)
		ORDER BY line_number ASC`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("load movement items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.MovementItem
		if err := rows.Scan(
			&item.ID, &item.MovementID, &item.ProductID, &item.Name, &item.SKU,
			&item.Unit, &item.Quantity, &item.Reason, &item.Notes,
		); err != nil {
			return fmt.Errorf("scan movement item: %w", err)
		}
		if m, ok := byID[item.MovementID]; ok {
			m.Items = append(m.Items, item)
		}
	}
	return rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var supplierID, warehouseID, fromWarehouseID, toWarehouseID *string
	var expectedDate, movementDate *time.Time
	if err := row.Scan(
		&m.ID, &m.CompanyID, &m.Number, &m.Kind, &m.Status,
		&supplierID, &m.Customer, &m.Address,
		&warehouseID, &fromWarehouseID, &toWarehouseID, &m.AdjustmentType,
		&expectedDate, &movementDate, &m.CompletedAt, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	m.SupplierID = deref(supplierID)
	m.WarehouseID = deref(warehouseID)
	m.FromWarehouseID = deref(fromWarehouseID)
	m.ToWarehouseID = deref(toWarehouseID)
	if expectedDate != nil {
		m.ExpectedDate = *expectedDate
	}
	if movementDate != nil {
		m.MovementDate = *movementDate
	}
	return &m, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// nullTime convierte el cero de time.Time a NULL.
func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
