package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// MovementFilter criterios de listado de movimientos.
type MovementFilter struct {
	Kind   string // receipt, delivery, transfer, adjustment; vacío = todos
	Status string // draft, pending, completed, cancelled; vacío = todos
}

// MovementRepository define el puerto de persistencia para movimientos de stock.
// Create y UpdateStatus persisten el documento con sus líneas.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	UpdateStatus(movement *entity.Movement) error
	ListByCompany(companyID string, filter MovementFilter, limit, offset int) ([]*entity.Movement, error)
	// CountPendingByCompany cuenta movimientos en estado pending de todos los
	// tipos (KPI "operaciones pendientes").
	CountPendingByCompany(companyID string) (int, error)
	// ListRecentByCompany devuelve los movimientos más recientes de todos los
	// tipos ordenados por fecha de creación descendente. Ante fechas iguales
	// conserva el orden de concatenación recibos, entregas, traslados, ajustes.
	ListRecentByCompany(companyID string, limit int) ([]*entity.Movement, error)
}
