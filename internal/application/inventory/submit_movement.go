package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	dominv "github.com/jhoicas/stocktrack-api/internal/domain/inventory"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// SubmitMovementUseCase crea y somete movimientos de stock (recibo, entrega,
// traslado, ajuste) de forma transaccional. Un movimiento creado o sometido en
// estado pending aplica la mutación de stock con bloqueo de fila (SELECT FOR
// UPDATE) y Commit/Rollback; un draft solo persiste el documento.
type SubmitMovementUseCase struct {
	txRunner      TxRunner
	movementRepo  repository.MovementRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	supplierRepo  repository.SupplierRepository
	sequenceRepo  repository.SequenceRepository
}

// NewSubmitMovementUseCase construye el caso de uso.
func NewSubmitMovementUseCase(
	txRunner TxRunner,
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	supplierRepo repository.SupplierRepository,
	sequenceRepo repository.SequenceRepository,
) *SubmitMovementUseCase {
	return &SubmitMovementUseCase{
		txRunner:      txRunner,
		movementRepo:  movementRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		supplierRepo:  supplierRepo,
		sequenceRepo:  sequenceRepo,
	}
}

// Create valida encabezado y líneas, copia el snapshot de cada producto a la línea,
// asigna el número de negocio (inmutable) y persiste. Si status es pending, la
// mutación de stock ocurre en la misma transacción que el documento.
func (uc *SubmitMovementUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.MovementStatusDraft
	}
	if status != entity.MovementStatusDraft && status != entity.MovementStatusPending {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.validateHeader(companyID, in); err != nil {
		return nil, err
	}

	items, err := uc.buildItems(companyID, in)
	if err != nil {
		return nil, err
	}

	prefix := entity.NumberPrefixFor(in.Kind)
	seq, err := uc.sequenceRepo.Next(companyID, prefix)
	if err != nil {
		return nil, fmt.Errorf("asignar número de movimiento: %w", err)
	}

	now := time.Now()
	mov := &entity.Movement{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Number:          fmt.Sprintf("%s-%06d", prefix, seq),
		Kind:            in.Kind,
		Status:          status,
		SupplierID:      in.SupplierID,
		Customer:        in.Customer,
		Address:         in.Address,
		WarehouseID:     in.WarehouseID,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		AdjustmentType:  in.AdjustmentType,
		ExpectedDate:    in.ExpectedDate,
		MovementDate:    in.MovementDate,
		Notes:           in.Notes,
		Items:           items,
		CreatedAt:       now,
		CreatedBy:       userID,
		UpdatedAt:       now,
	}
	for i := range mov.Items {
		mov.Items[i].ID = uuid.New().String()
		mov.Items[i].MovementID = mov.ID
	}

	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
		if status == entity.MovementStatusPending {
			if err := uc.applyStock(mov, stockRepo, now); err != nil {
				return err
			}
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// Submit pasa un draft a pending aplicando la mutación de stock en la misma
// transacción. La disponibilidad se verifica contra el stock real al momento de
// someter, no contra el snapshot del formulario.
func (uc *SubmitMovementUseCase) Submit(ctx context.Context, companyID, movementID string) (*dto.MovementResponse, error) {
	mov, err := uc.movementRepo.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	if mov.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if mov.Status != entity.MovementStatusDraft {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, stockRepo repository.StockRepository) error {
		if err := uc.applyStock(mov, stockRepo, now); err != nil {
			return err
		}
		mov.Status = entity.MovementStatusPending
		mov.UpdatedAt = now
		return movRepo.UpdateStatus(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// UpdateStatus aplica las transiciones simples sin efecto de stock:
// pending -> completed, pending -> cancelled y draft -> cancelled.
func (uc *SubmitMovementUseCase) UpdateStatus(ctx context.Context, companyID, movementID, status string) (*dto.MovementResponse, error) {
	mov, err := uc.movementRepo.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	if mov.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	switch {
	case status == entity.MovementStatusCompleted && mov.Status == entity.MovementStatusPending:
		mov.Status = entity.MovementStatusCompleted
		mov.CompletedAt = &now
	case status == entity.MovementStatusCancelled &&
		(mov.Status == entity.MovementStatusPending || mov.Status == entity.MovementStatusDraft):
		mov.Status = entity.MovementStatusCancelled
	default:
		return nil, domain.ErrConflict
	}
	mov.UpdatedAt = now
	if err := uc.movementRepo.UpdateStatus(mov); err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// GetByID obtiene un movimiento de la empresa.
func (uc *SubmitMovementUseCase) GetByID(companyID, movementID string) (*dto.MovementResponse, error) {
	mov, err := uc.movementRepo.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	if mov.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toMovementResponse(mov), nil
}

// List lista movimientos por tipo/estado con paginación.
func (uc *SubmitMovementUseCase) List(companyID string, filter repository.MovementFilter, limit, offset int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.ListByCompany(companyID, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// validateHeader verifica los campos de encabezado requeridos según el tipo.
func (uc *SubmitMovementUseCase) validateHeader(companyID string, in dto.CreateMovementRequest) error {
	switch in.Kind {
	case entity.MovementKindReceipt:
		if in.SupplierID == "" || in.WarehouseID == "" || in.ExpectedDate.IsZero() {
			return domain.ErrInvalidInput
		}
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return err
		}
		if supplier == nil || supplier.CompanyID != companyID {
			return domain.ErrNotFound
		}
		return uc.checkWarehouse(companyID, in.WarehouseID)
	case entity.MovementKindDelivery:
		if in.Customer == "" || in.Address == "" || in.WarehouseID == "" || in.ExpectedDate.IsZero() {
			return domain.ErrInvalidInput
		}
		return uc.checkWarehouse(companyID, in.WarehouseID)
	case entity.MovementKindTransfer:
		if in.FromWarehouseID == "" || in.ToWarehouseID == "" || in.MovementDate.IsZero() {
			return domain.ErrInvalidInput
		}
		if in.FromWarehouseID == in.ToWarehouseID {
			return domain.ErrSameWarehouse
		}
		if err := uc.checkWarehouse(companyID, in.FromWarehouseID); err != nil {
			return err
		}
		return uc.checkWarehouse(companyID, in.ToWarehouseID)
	case entity.MovementKindAdjustment:
		if in.WarehouseID == "" || in.AdjustmentType == "" || in.MovementDate.IsZero() {
			return domain.ErrInvalidInput
		}
		return uc.checkWarehouse(companyID, in.WarehouseID)
	default:
		return domain.ErrInvalidInput
	}
}

func (uc *SubmitMovementUseCase) checkWarehouse(companyID, warehouseID string) error {
	wh, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if wh == nil || wh.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return nil
}

// buildItems valida cada línea y copia el snapshot (nombre, SKU, unidad) del
// producto seleccionado. La unidad nunca se recibe del cliente.
func (uc *SubmitMovementUseCase) buildItems(companyID string, in dto.CreateMovementRequest) ([]entity.MovementItem, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.MovementItem, 0, len(in.Items))
	for _, row := range in.Items {
		if row.ProductID == "" || row.Quantity.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		switch in.Kind {
		case entity.MovementKindAdjustment:
			// Cantidad con signo; el motivo es obligatorio y de la lista fija.
			if !entity.ValidAdjustmentReason(row.Reason) {
				return nil, domain.ErrInvalidInput
			}
		default:
			if row.Quantity.LessThanOrEqual(decimal.Zero) {
				return nil, domain.ErrInvalidInput
			}
		}
		product, err := uc.productRepo.GetByID(row.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
		items = append(items, entity.MovementItem{
			ProductID: product.ID,
			Name:      product.Name,
			SKU:       product.SKU,
			Unit:      product.Unit,
			Quantity:  row.Quantity,
			Reason:    row.Reason,
			Notes:     row.Notes,
		})
	}
	return items, nil
}

// applyStock aplica el efecto del movimiento sobre el stock, línea por línea,
// usando los repositorios atados a la transacción. Las salidas verifican
// disponibilidad sobre la fila bloqueada.
func (uc *SubmitMovementUseCase) applyStock(mov *entity.Movement, stockRepo repository.StockRepository, now time.Time) error {
	for _, item := range mov.Items {
		switch mov.Kind {
		case entity.MovementKindReceipt:
			if err := addStock(stockRepo, item.ProductID, mov.WarehouseID, item.Quantity, now); err != nil {
				return err
			}
		case entity.MovementKindDelivery:
			if err := removeStock(stockRepo, item.ProductID, mov.WarehouseID, item.Quantity, now); err != nil {
				return err
			}
		case entity.MovementKindTransfer:
			// Resta en origen y suma en destino dentro de la misma transacción.
			if err := removeStock(stockRepo, item.ProductID, mov.FromWarehouseID, item.Quantity, now); err != nil {
				return err
			}
			if err := addStock(stockRepo, item.ProductID, mov.ToWarehouseID, item.Quantity, now); err != nil {
				return err
			}
		case entity.MovementKindAdjustment:
			// Positivo aumenta, negativo disminuye (verificando disponibilidad).
			if item.Quantity.GreaterThan(decimal.Zero) {
				if err := addStock(stockRepo, item.ProductID, mov.WarehouseID, item.Quantity, now); err != nil {
					return err
				}
			} else {
				if err := removeStock(stockRepo, item.ProductID, mov.WarehouseID, item.Quantity.Neg(), now); err != nil {
					return err
				}
			}
		default:
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func addStock(stockRepo repository.StockRepository, productID, warehouseID string, qty decimal.Decimal, now time.Time) error {
	stock, err := stockRepo.GetForUpdate(productID, warehouseID)
	if err != nil {
		return err
	}
	stock.Quantity = stock.Quantity.Add(qty)
	stock.UpdatedAt = now
	return stockRepo.Upsert(stock)
}

func removeStock(stockRepo repository.StockRepository, productID, warehouseID string, qty decimal.Decimal, now time.Time) error {
	stock, err := stockRepo.GetForUpdate(productID, warehouseID)
	if err != nil {
		return err
	}
	if !dominv.Sufficient(stock.Quantity, qty) {
		return domain.ErrInsufficientStock
	}
	stock.Quantity = stock.Quantity.Sub(qty)
	stock.UpdatedAt = now
	return stockRepo.Upsert(stock)
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	items := make([]dto.MovementItemResponse, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, dto.MovementItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			SKU:       it.SKU,
			Unit:      it.Unit,
			Quantity:  it.Quantity,
			Reason:    it.Reason,
			Notes:     it.Notes,
		})
	}
	resp := &dto.MovementResponse{
		ID:              m.ID,
		CompanyID:       m.CompanyID,
		Number:          m.Number,
		Kind:            m.Kind,
		Status:          m.Status,
		SupplierID:      m.SupplierID,
		Customer:        m.Customer,
		Address:         m.Address,
		WarehouseID:     m.WarehouseID,
		FromWarehouseID: m.FromWarehouseID,
		ToWarehouseID:   m.ToWarehouseID,
		AdjustmentType:  m.AdjustmentType,
		CompletedAt:     m.CompletedAt,
		Notes:           m.Notes,
		Items:           items,
		CreatedAt:       m.CreatedAt,
		CreatedBy:       m.CreatedBy,
	}
	if !m.ExpectedDate.IsZero() {
		t := m.ExpectedDate
		resp.ExpectedDate = &t
	}
	if !m.MovementDate.IsZero() {
		t := m.MovementDate
		resp.MovementDate = &t
	}
	return resp
}
