package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// TxRunner implementa inventory.TxRunner en memoria. Serializa las
// transacciones con un mutex propio y toma un snapshot de movimientos y stock
// antes de ejecutar fn; si fn falla, restaura el snapshot (rollback).
type TxRunner struct {
	store *Store
	txMu  sync.Mutex
}

// NewTxRunner construye el runner.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con semántica todo-o-nada sobre movimientos y stock.
func (t *TxRunner) Run(ctx context.Context, fn func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error) error {
	t.txMu.Lock()
	defer t.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	movSnapshot, stockSnapshot := t.snapshot()

	err := fn(NewMovementRepo(t.store), NewStockRepo(t.store))
	if err != nil {
		t.restore(movSnapshot, stockSnapshot)
		return err
	}
	return nil
}

func (t *TxRunner) snapshot() ([]*entity.Movement, map[string]*entity.Stock) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	movements := make([]*entity.Movement, len(t.store.movements))
	for i, m := range t.store.movements {
		movements[i] = cloneMovement(m)
	}
	stocks := make(map[string]*entity.Stock, len(t.store.stocks))
	for k, s := range t.store.stocks {
		stocks[k] = cloneStock(s)
	}
	return movements, stocks
}

func (t *TxRunner) restore(movements []*entity.Movement, stocks map[string]*entity.Stock) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.movements = movements
	t.store.stocks = stocks
}
