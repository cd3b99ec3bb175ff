package inventory

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// PDFUseCase genera el documento imprimible de un movimiento, resolviendo los
// nombres de empresa, proveedor y bodegas que el generador necesita mostrar.
type PDFUseCase struct {
	movementRepo  repository.MovementRepository
	companyRepo   repository.CompanyRepository
	supplierRepo  repository.SupplierRepository
	warehouseRepo repository.WarehouseRepository
	generator     MovementPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	movementRepo repository.MovementRepository,
	companyRepo repository.CompanyRepository,
	supplierRepo repository.SupplierRepository,
	warehouseRepo repository.WarehouseRepository,
	generator MovementPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		movementRepo:  movementRepo,
		companyRepo:   companyRepo,
		supplierRepo:  supplierRepo,
		warehouseRepo: warehouseRepo,
		generator:     generator,
	}
}

// GenerateMovementPDF devuelve los bytes del PDF del movimiento.
func (uc *PDFUseCase) GenerateMovementPDF(ctx context.Context, companyID, movementID string) ([]byte, error) {
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

	data := DocumentData{
		Movement:      mov,
		WarehouseName: make(map[string]string),
	}

	if company, err := uc.companyRepo.GetByID(companyID); err == nil && company != nil {
		data.CompanyName = company.Name
	}
	if mov.Kind == entity.MovementKindReceipt && mov.SupplierID != "" {
		if supplier, err := uc.supplierRepo.GetByID(mov.SupplierID); err == nil && supplier != nil {
			data.SupplierName = supplier.Name
		}
	}
	for _, id := range []string{mov.WarehouseID, mov.FromWarehouseID, mov.ToWarehouseID} {
		if id == "" {
			continue
		}
		if wh, err := uc.warehouseRepo.GetByID(id); err == nil && wh != nil {
			data.WarehouseName[id] = wh.Name
		}
	}

	return uc.generator.GenerateMovementPDF(ctx, data)
}
