package memory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// StockRepo implementa repository.StockRepository en memoria.
type StockRepo struct {
	store *Store
}

// NewStockRepo construye el repositorio.
func NewStockRepo(store *Store) *StockRepo {
	return &StockRepo{store: store}
}

func (r *StockRepo) Get(productID, warehouseID string) (*entity.Stock, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if s, ok := r.store.stocks[stockKey(productID, warehouseID)]; ok {
		return cloneStock(s), nil
	}
	// Sin fila aún: stock cero, igual que el adaptador de PostgreSQL.
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero}, nil
}

// GetForUpdate en memoria es igual a Get: el aislamiento lo da el TxRunner,
// que serializa las transacciones con el mutex del Store.
func (r *StockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	return r.Get(productID, warehouseID)
}

func (r *StockRepo) Upsert(stock *entity.Stock) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.stocks[stockKey(stock.ProductID, stock.WarehouseID)] = cloneStock(stock)
	return nil
}

func (r *StockRepo) ListByWarehouse(warehouseID string) ([]*entity.Stock, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.Stock, 0)
	for _, s := range r.store.stocks {
		if s.WarehouseID == warehouseID {
			out = append(out, cloneStock(s))
		}
	}
	return out, nil
}

func (r *StockRepo) TotalsByCompany(companyID string) (map[string]decimal.Decimal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	owned := make(map[string]bool)
	for _, p := range r.store.products {
		if p.CompanyID == companyID {
			owned[p.ID] = true
		}
	}

	totals := make(map[string]decimal.Decimal)
	for _, s := range r.store.stocks {
		if !owned[s.ProductID] {
			continue
		}
		totals[s.ProductID] = totals[s.ProductID].Add(s.Quantity)
	}
	return totals, nil
}
