// seed genera el script SQL con el dataset de demostración (empresa, admin,
// bodegas, proveedores, productos con stock y movimientos de muestra) para
// instalaciones con PostgreSQL. El modo demo (APP_DEMO=true) no lo necesita:
// ahí el mismo dataset se siembra en memoria al arrancar.
//
// Uso: go run ./cmd/seed
// Escribe: migrations/002_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
	"github.com/jhoicas/stocktrack-api/internal/infrastructure/memory"
)

func main() {
	store := memory.NewStore()
	memory.Seed(store)

	companyRepo := memory.NewCompanyRepo(store)
	userRepo := memory.NewUserRepo(store)
	warehouseRepo := memory.NewWarehouseRepo(store)
	supplierRepo := memory.NewSupplierRepo(store)
	productRepo := memory.NewProductRepo(store)
	stockRepo := memory.NewStockRepo(store)
	movementRepo := memory.NewMovementRepo(store)

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Dataset de demostración de StockTrack.\n")
	out.WriteString("-- Generado con: go run ./cmd/seed\n")
	out.WriteString("-- Aplicar después de 001_schema.sql.\n\n")

	company, err := companyRepo.GetByID(memory.DemoCompanyID)
	if err != nil || company == nil {
		fmt.Fprintln(os.Stderr, "Empresa de demostración no encontrada en el dataset")
		os.Exit(1)
	}
	fmt.Fprintf(out, "INSERT INTO companies (id, name) VALUES ('%s', '%s')\nON CONFLICT (id) DO NOTHING;\n\n",
		company.ID, escapeSQL(company.Name))

	admin, err := userRepo.GetByEmail(memory.DemoEmail)
	if err != nil || admin == nil {
		fmt.Fprintln(os.Stderr, "Usuario de demostración no encontrado en el dataset")
		os.Exit(1)
	}
	fmt.Fprintf(out, "INSERT INTO users (id, company_id, login_id, email, password_hash, name, role, status) VALUES\n")
	fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s')\nON CONFLICT (id) DO NOTHING;\n\n",
		admin.ID, admin.CompanyID, admin.LoginID, admin.Email, admin.PasswordHash,
		escapeSQL(admin.Name), admin.Role, admin.Status)

	warehouses, _ := warehouseRepo.ListByCompany(company.ID, 100, 0)
	out.WriteString("INSERT INTO warehouses (id, company_id, name, location, capacity, current_occupancy, manager) VALUES\n")
	for i, w := range warehouses {
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', %d, %d, '%s')%s\n",
			w.ID, w.CompanyID, escapeSQL(w.Name), escapeSQL(w.Location),
			w.Capacity, w.CurrentOccupancy, escapeSQL(w.Manager), sep(i, len(warehouses)))
	}
	out.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")

	suppliers, _ := supplierRepo.ListByCompany(company.ID, 100, 0)
	out.WriteString("INSERT INTO suppliers (id, company_id, name, email, phone) VALUES\n")
	for i, s := range suppliers {
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', '%s')%s\n",
			s.ID, s.CompanyID, escapeSQL(s.Name), escapeSQL(s.Email), escapeSQL(s.Phone), sep(i, len(suppliers)))
	}
	out.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")

	products, _ := productRepo.ListByCompany(company.ID, repository.ProductFilter{}, 100, 0)
	out.WriteString("INSERT INTO products (id, company_id, sku, name, description, category, unit, min_stock, max_stock, price, supplier_id) VALUES\n")
	for i, p := range products {
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', '%s', '%s', '%s', %s, %s, %s, %s)%s\n",
			p.ID, p.CompanyID, escapeSQL(p.SKU), escapeSQL(p.Name), escapeSQL(p.Description),
			escapeSQL(p.Category), escapeSQL(p.Unit),
			p.MinStock.String(), p.MaxStock.String(), p.Price.String(),
			nullableText(p.SupplierID), sep(i, len(products)))
	}
	out.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")

	out.WriteString("INSERT INTO stock (product_id, warehouse_id, quantity) VALUES\n")
	var stockRows []string
	for _, w := range warehouses {
		rows, _ := stockRepo.ListByWarehouse(w.ID)
		for _, s := range rows {
			stockRows = append(stockRows, fmt.Sprintf("  ('%s', '%s', %s)", s.ProductID, s.WarehouseID, s.Quantity.String()))
		}
	}
	// Orden estable: el repositorio en memoria itera un map.
	sort.Strings(stockRows)
	out.WriteString(strings.Join(stockRows, ",\n"))
	out.WriteString("\nON CONFLICT (product_id, warehouse_id) DO NOTHING;\n\n")

	movements, _ := movementRepo.ListByCompany(company.ID, repository.MovementFilter{}, 100, 0)
	for _, m := range movements {
		writeMovement(out, m)
	}

	out.WriteString("INSERT INTO movement_sequences (company_id, prefix, current) VALUES\n")
	prefixes := []string{
		entity.NumberPrefixReceipt,
		entity.NumberPrefixDelivery,
		entity.NumberPrefixTransfer,
		entity.NumberPrefixAdjustment,
	}
	for i, prefix := range prefixes {
		fmt.Fprintf(out, "  ('%s', '%s', 2)%s\n", company.ID, prefix, sep(i, len(prefixes)))
	}
	out.WriteString("ON CONFLICT (company_id, prefix) DO NOTHING;\n")

	fmt.Printf("Generado %s: %d bodegas, %d proveedores, %d productos, %d movimientos\n",
		outPath, len(warehouses), len(suppliers), len(products), len(movements))
}

func writeMovement(out *os.File, m *entity.Movement) {
	fmt.Fprintf(out, "INSERT INTO movements (id, company_id, number, kind, status, supplier_id, customer, address, warehouse_id, from_warehouse_id, to_warehouse_id, adjustment_type, expected_date, movement_date, completed_at, notes, created_at, created_by, updated_at) VALUES\n")
	fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', '%s', %s, '%s', '%s', %s, %s, %s, '%s', %s, %s, %s, '%s', %s, '%s', %s)\nON CONFLICT (id) DO NOTHING;\n",
		m.ID, m.CompanyID, m.Number, m.Kind, m.Status,
		nullableText(m.SupplierID), escapeSQL(m.Customer), escapeSQL(m.Address),
		nullableText(m.WarehouseID), nullableText(m.FromWarehouseID), nullableText(m.ToWarehouseID),
		escapeSQL(m.AdjustmentType),
		nullableTime(m.ExpectedDate), nullableTime(m.MovementDate), nullableTimePtr(m.CompletedAt),
		escapeSQL(m.Notes), sqlTime(m.CreatedAt), m.CreatedBy, sqlTime(m.UpdatedAt))
	if len(m.Items) > 0 {
		out.WriteString("INSERT INTO movement_items (id, movement_id, line_number, product_id, name, sku, unit, quantity, reason, notes) VALUES\n")
		for i, it := range m.Items {
			fmt.Fprintf(out, "  ('%s', '%s', %d, '%s', '%s', '%s', '%s', %s, '%s', '%s')%s\n",
				it.ID, it.MovementID, i, it.ProductID, escapeSQL(it.Name), escapeSQL(it.SKU),
				escapeSQL(it.Unit), it.Quantity.String(), escapeSQL(it.Reason), escapeSQL(it.Notes),
				sep(i, len(m.Items)))
		}
		out.WriteString("ON CONFLICT (id) DO NOTHING;\n")
	}
	out.WriteString("\n")
}

func sep(i, total int) string {
	if i < total-1 {
		return ","
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func nullableText(s string) string {
	if s == "" {
		return "NULL"
	}
	return "'" + escapeSQL(s) + "'"
}

func sqlTime(t time.Time) string {
	return "'" + t.UTC().Format(time.RFC3339) + "'"
}

func nullableTime(t time.Time) string {
	if t.IsZero() {
		return "NULL"
	}
	return sqlTime(t)
}

func nullableTimePtr(t *time.Time) string {
	if t == nil {
		return "NULL"
	}
	return sqlTime(*t)
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
