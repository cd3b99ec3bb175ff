package memory

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// Credenciales de la cuenta de demostración. La contraseña cumple las reglas
// de registro; el hash se genera al sembrar.
const (
	DemoCompanyID = "demo-company"
	DemoUserID    = "demo-admin"
	DemoEmail     = "admin@demo.stocktrack.io"
	DemoLoginID   = "demoadmin"
	DemoPassword  = "Demo1234!"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// Seed carga el dataset de demostración: una empresa con su administrador,
// tres bodegas, cinco proveedores, diez productos con stock y una muestra de
// movimientos de los cuatro tipos en distintos estados.
func Seed(store *Store) {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := time.Now()
	hash, _ := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)

	store.companies = append(store.companies, &entity.Company{
		ID:        DemoCompanyID,
		Name:      "StockTrack Demo Co.",
		CreatedAt: now,
		UpdatedAt: now,
	})

	store.users = append(store.users, &entity.User{
		ID:           DemoUserID,
		CompanyID:    DemoCompanyID,
		LoginID:      DemoLoginID,
		Email:        DemoEmail,
		PasswordHash: string(hash),
		Name:         "Demo Admin",
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	seedWarehouses(store, now)
	seedSuppliers(store, now)
	seedProducts(store, now)
	seedMovements(store)

	// Los números de muestra llegan hasta 2 por prefijo.
	for _, prefix := range []string{
		entity.NumberPrefixReceipt,
		entity.NumberPrefixDelivery,
		entity.NumberPrefixTransfer,
		entity.NumberPrefixAdjustment,
	} {
		store.sequences[DemoCompanyID+"|"+prefix] = 2
	}
}

func seedWarehouses(store *Store, now time.Time) {
	for _, w := range []*entity.Warehouse{
		{ID: "warehouse-1", Name: "Main Warehouse", Location: "New York, NY", Capacity: 50000, CurrentOccupancy: 38000, Manager: "John Smith"},
		{ID: "warehouse-2", Name: "Secondary Warehouse", Location: "Chicago, IL", Capacity: 30000, CurrentOccupancy: 22500, Manager: "Sarah Johnson"},
		{ID: "warehouse-3", Name: "LA Distribution Center", Location: "Los Angeles, CA", Capacity: 40000, CurrentOccupancy: 32000, Manager: "Mike Davis"},
	} {
		w.CompanyID = DemoCompanyID
		w.CreatedAt = now
		w.UpdatedAt = now
		store.warehouses = append(store.warehouses, w)
	}
}

func seedSuppliers(store *Store, now time.Time) {
	for _, s := range []*entity.Supplier{
		{ID: "supplier-1", Name: "Global Tools Inc.", Email: "sales@globaltools.com", Phone: "+1-555-1001"},
		{ID: "supplier-2", Name: "SafeGuard Corp.", Email: "contact@safeguard.com", Phone: "+1-555-1002"},
		{ID: "supplier-3", Name: "ElectroSupply Ltd.", Email: "orders@electrosupply.com", Phone: "+1-555-1003"},
		{ID: "supplier-4", Name: "ColorTech Paints", Email: "sales@colortech.com", Phone: "+1-555-1004"},
		{ID: "supplier-5", Name: "Steel Industries Co.", Email: "contact@steelindustries.com", Phone: "+1-555-1005"},
	} {
		s.CompanyID = DemoCompanyID
		s.CreatedAt = now
		s.UpdatedAt = now
		store.suppliers = append(store.suppliers, s)
	}
}

type seedProduct struct {
	id, sku, name, description, category, unit string
	minStock, maxStock, stock, price           string
	supplierID                                 string
}

func seedProducts(store *Store, now time.Time) {
	rows := []seedProduct{
		{"product-1", "SKU-1234", "Industrial Drill Bits Set", "Complete set of industrial-grade drill bits (1mm-13mm)", "Tools", "sets", "50", "200", "150", "45.99", "supplier-1"},
		{"product-2", "SKU-5678", "Safety Helmets", "Hard hats with chin strap - OSHA approved", "Safety Equipment", "pcs", "25", "150", "8", "25.50", "supplier-2"},
		{"product-3", "SKU-9012", "Cable Rolls (100m)", "Copper electrical cable, 2.5mm cross-section", "Electrical", "rolls", "10", "50", "3", "85.00", "supplier-3"},
		{"product-4", "SKU-3456", "Paint Cans (5L)", "Premium interior/exterior paint - various colors", "Supplies", "cans", "20", "100", "0", "35.75", "supplier-4"},
		{"product-5", "SKU-7890", "Work Gloves", "Nitrile coated work gloves - high grip", "Safety Equipment", "pairs", "100", "400", "200", "8.99", "supplier-2"},
		{"product-6", "SKU-2345", "LED Bulbs Pack", "10-pack of 10W LED bulbs - 6500K daylight", "Electrical", "packs", "30", "150", "85", "42.50", "supplier-3"},
		{"product-7", "SKU-6789", "Measuring Tape", "25m measuring tape with auto-lock feature", "Tools", "pcs", "20", "100", "45", "15.99", "supplier-1"},
		{"product-8", "SKU-0123", "Steel Pipes (2m)", "Galvanized steel pipes, 3/4\" diameter", "Materials", "pcs", "15", "80", "12", "22.75", "supplier-5"},
		{"product-9", "SKU-4567", "Screwdriver Set", "12-piece precision screwdriver set", "Tools", "sets", "25", "120", "67", "32.99", "supplier-1"},
		{"product-10", "SKU-8901", "Safety Goggles", "Anti-scratch protective eyewear", "Safety Equipment", "pcs", "40", "200", "120", "18.50", "supplier-2"},
	}
	for _, row := range rows {
		store.products = append(store.products, &entity.Product{
			ID:          row.id,
			CompanyID:   DemoCompanyID,
			SKU:         row.sku,
			Name:        row.name,
			Description: row.description,
			Category:    row.category,
			Unit:        row.unit,
			MinStock:    dec(row.minStock),
			MaxStock:    dec(row.maxStock),
			Price:       dec(row.price),
			SupplierID:  row.supplierID,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		// Todo el stock inicial vive en la bodega principal.
		store.stocks[stockKey(row.id, "warehouse-1")] = &entity.Stock{
			ProductID:   row.id,
			WarehouseID: "warehouse-1",
			Quantity:    dec(row.stock),
			UpdatedAt:   now,
		}
	}
}

func seedMovements(store *Store) {
	completed := day("2025-11-17")
	adjCompleted := day("2025-11-14")

	store.movements = append(store.movements,
		&entity.Movement{
			ID: "movement-r1", CompanyID: DemoCompanyID, Number: "RCP-000001",
			Kind: entity.MovementKindReceipt, Status: entity.MovementStatusCompleted,
			SupplierID: "supplier-1", WarehouseID: "warehouse-1",
			ExpectedDate: day("2025-11-15"),
			Notes:        "Urgent order for rush project",
			Items: []entity.MovementItem{
				{ID: "mi-r1-1", MovementID: "movement-r1", ProductID: "product-1", Name: "Industrial Drill Bits Set", SKU: "SKU-1234", Unit: "sets", Quantity: dec("50")},
				{ID: "mi-r1-2", MovementID: "movement-r1", ProductID: "product-7", Name: "Measuring Tape", SKU: "SKU-6789", Unit: "pcs", Quantity: dec("20")},
			},
			CreatedAt: day("2025-11-15"), CreatedBy: DemoUserID, UpdatedAt: day("2025-11-15"),
		},
		&entity.Movement{
			ID: "movement-r2", CompanyID: DemoCompanyID, Number: "RCP-000002",
			Kind: entity.MovementKindReceipt, Status: entity.MovementStatusPending,
			SupplierID: "supplier-2", WarehouseID: "warehouse-1",
			ExpectedDate: day("2025-11-18"),
			Notes:        "Regular monthly order",
			Items: []entity.MovementItem{
				{ID: "mi-r2-1", MovementID: "movement-r2", ProductID: "product-2", Name: "Safety Helmets", SKU: "SKU-5678", Unit: "pcs", Quantity: dec("30")},
				{ID: "mi-r2-2", MovementID: "movement-r2", ProductID: "product-5", Name: "Work Gloves", SKU: "SKU-7890", Unit: "pairs", Quantity: dec("100")},
			},
			CreatedAt: day("2025-11-16"), CreatedBy: DemoUserID, UpdatedAt: day("2025-11-16"),
		},
		&entity.Movement{
			ID: "movement-d1", CompanyID: DemoCompanyID, Number: "DLV-000001",
			Kind: entity.MovementKindDelivery, Status: entity.MovementStatusCompleted,
			Customer: "ABC Construction Inc.", Address: "123 Main Street, New York, NY",
			WarehouseID:  "warehouse-1",
			ExpectedDate: day("2025-11-20"),
			Notes:        "Delivery completed on time",
			Items: []entity.MovementItem{
				{ID: "mi-d1-1", MovementID: "movement-d1", ProductID: "product-1", Name: "Industrial Drill Bits Set", SKU: "SKU-1234", Unit: "sets", Quantity: dec("15")},
				{ID: "mi-d1-2", MovementID: "movement-d1", ProductID: "product-5", Name: "Work Gloves", SKU: "SKU-7890", Unit: "pairs", Quantity: dec("50")},
			},
			CreatedAt: day("2025-11-19"), CreatedBy: DemoUserID, UpdatedAt: day("2025-11-19"),
		},
		&entity.Movement{
			ID: "movement-d2", CompanyID: DemoCompanyID, Number: "DLV-000002",
			Kind: entity.MovementKindDelivery, Status: entity.MovementStatusPending,
			Customer: "XYZ Electrical Ltd.", Address: "456 Industrial Avenue, Chicago, IL",
			WarehouseID:  "warehouse-2",
			ExpectedDate: day("2025-11-22"),
			Notes:        "Awaiting customer signature",
			Items: []entity.MovementItem{
				{ID: "mi-d2-1", MovementID: "movement-d2", ProductID: "product-3", Name: "Cable Rolls (100m)", SKU: "SKU-9012", Unit: "rolls", Quantity: dec("10")},
				{ID: "mi-d2-2", MovementID: "movement-d2", ProductID: "product-6", Name: "LED Bulbs Pack", SKU: "SKU-2345", Unit: "packs", Quantity: dec("20")},
			},
			CreatedAt: day("2025-11-21"), CreatedBy: DemoUserID, UpdatedAt: day("2025-11-21"),
		},
		&entity.Movement{
			ID: "movement-t1", CompanyID: DemoCompanyID, Number: "TRF-000001",
			Kind: entity.MovementKindTransfer, Status: entity.MovementStatusCompleted,
			FromWarehouseID: "warehouse-1", ToWarehouseID: "warehouse-2",
			MovementDate: day("2025-11-16"), CompletedAt: &completed,
			Notes: "Stock rebalancing between warehouses",
			Items: []entity.MovementItem{
				{ID: "mi-t1-1", MovementID: "movement-t1", ProductID: "product-5", Name: "Work Gloves", SKU: "SKU-7890", Unit: "pairs", Quantity: dec("50")},
			},
			CreatedAt: day("2025-11-16"), CreatedBy: DemoUserID, UpdatedAt: day("2025-11-17"),
		},
		&entity.Movement{
			ID: "movement-t2", CompanyID: DemoCompanyID, Number: "TRF-000002",
			Kind: entity.MovementKindTransfer, Status: entity.MovementStatusPending,
			FromWarehouseID: "warehouse-2", ToWarehouseID: "warehouse-3",
			MovementDate: day("2025-11-18"),
			Notes:        "Customer order fulfillment from LA center",
			Items: []entity.MovementItem{
				{ID: "mi-t2-1", MovementID: "movement-t2", ProductID: "product-1", Name: "Industrial Drill Bits Set", SKU: "SKU-1234", Unit: "sets", Quantity: dec("25")},
			},
			CreatedAt: day("2025-11-18"), CreatedBy: DemoUserID, UpdatedAt: day("2025-11-18"),
		},
		&entity.Movement{
			ID: "movement-a1", CompanyID: DemoCompanyID, Number: "ADJ-000001",
			Kind: entity.MovementKindAdjustment, Status: entity.MovementStatusCompleted,
			WarehouseID: "warehouse-1", AdjustmentType: "Damage",
			MovementDate: day("2025-11-14"), CompletedAt: &adjCompleted,
			Notes: "Physical inventory count revealed damaged items",
			Items: []entity.MovementItem{
				{ID: "mi-a1-1", MovementID: "movement-a1", ProductID: "product-2", Name: "Safety Helmets", SKU: "SKU-5678", Unit: "pcs", Quantity: dec("-5"), Reason: "Damaged goods", Notes: "Damaged in storage"},
			},
			CreatedAt: day("2025-11-14"), CreatedBy: DemoUserID, UpdatedAt: day("2025-11-14"),
		},
		&entity.Movement{
			ID: "movement-a2", CompanyID: DemoCompanyID, Number: "ADJ-000002",
			Kind: entity.MovementKindAdjustment, Status: entity.MovementStatusDraft,
			WarehouseID: "warehouse-1", AdjustmentType: "Correction",
			MovementDate: day("2025-11-15"),
			Notes:        "System count was off by 10 units",
			Items: []entity.MovementItem{
				{ID: "mi-a2-1", MovementID: "movement-a2", ProductID: "product-4", Name: "Paint Cans (5L)", SKU: "SKU-3456", Unit: "cans", Quantity: dec("10"), Reason: "Inventory count correction", Notes: "Count discrepancy corrected"},
			},
			CreatedAt: day("2025-11-15"), CreatedBy: DemoUserID, UpdatedAt: day("2025-11-15"),
		},
	)
}
