// Package pdf implementa la representación imprimible de un movimiento de
// stock con Maroto v2: recibo de bodega, nota de entrega, orden de traslado
// o acta de ajuste, según el tipo del documento.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appinv "github.com/jhoicas/stocktrack-api/internal/application/inventory"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appinv.MovementPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa inventory.MovementPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateMovementPDF genera el PDF del movimiento y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateMovementPDF(_ context.Context, data appinv.DocumentData) ([]byte, error) {
	mov := data.Movement

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(documentTitle(mov.Kind)+" "+mov.Number, true).
		WithAuthor(data.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(mov, data.CompanyName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(mov, data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(mov.Kind))
	for _, r := range tableItemRows(mov) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(mov))

	if mov.Notes != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Notas: "+mov.Notes, props.Text{Size: 8, Color: colorGray, Top: 2}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func documentTitle(kind string) string {
	switch kind {
	case entity.MovementKindReceipt:
		return "WAREHOUSE RECEIPT"
	case entity.MovementKindDelivery:
		return "DELIVERY NOTE"
	case entity.MovementKindTransfer:
		return "TRANSFER ORDER"
	case entity.MovementKindAdjustment:
		return "STOCK ADJUSTMENT"
	}
	return "STOCK MOVEMENT"
}

// headerRow: empresa (izq), título + número + fecha (der).
func headerRow(mov *entity.Movement, companyName string) core.Row {
	date := mov.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventory Management", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(documentTitle(mov.Kind), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(mov.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partiesRow: contraparte y bodegas según el tipo de movimiento.
func partiesRow(mov *entity.Movement, data appinv.DocumentData) core.Row {
	var lines []string
	switch mov.Kind {
	case entity.MovementKindReceipt:
		lines = append(lines, "Proveedor: "+nonEmpty(data.SupplierName, "—"))
		lines = append(lines, "Bodega destino: "+warehouseLabel(data, mov.WarehouseID))
		if !mov.ExpectedDate.IsZero() {
			lines = append(lines, "Fecha esperada: "+mov.ExpectedDate.Format("02/01/2006"))
		}
	case entity.MovementKindDelivery:
		lines = append(lines, "Cliente: "+nonEmpty(mov.Customer, "—"))
		lines = append(lines, "Dirección: "+nonEmpty(mov.Address, "—"))
		lines = append(lines, "Bodega origen: "+warehouseLabel(data, mov.WarehouseID))
	case entity.MovementKindTransfer:
		lines = append(lines, "Bodega origen: "+warehouseLabel(data, mov.FromWarehouseID))
		lines = append(lines, "Bodega destino: "+warehouseLabel(data, mov.ToWarehouseID))
		if !mov.MovementDate.IsZero() {
			lines = append(lines, "Fecha de traslado: "+mov.MovementDate.Format("02/01/2006"))
		}
	case entity.MovementKindAdjustment:
		lines = append(lines, "Tipo de ajuste: "+nonEmpty(mov.AdjustmentType, "—"))
		lines = append(lines, "Bodega: "+warehouseLabel(data, mov.WarehouseID))
	}

	components := make([]core.Component, 0, len(lines)+1)
	components = append(components, text.New("DETALLE DEL DOCUMENTO", props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
	}))
	for i, l := range lines {
		components = append(components, text.New(l, props.Text{
			Size: 8, Top: float64(6 + i*5), Color: colorGray,
		}))
	}
	return row.New(float64(8 + len(lines)*5)).Add(col.New(12).Add(components...))
}

func warehouseLabel(data appinv.DocumentData, id string) string {
	if name, ok := data.WarehouseName[id]; ok && name != "" {
		return name
	}
	return nonEmpty(id, "—")
}

// tableHeaderRow: cabecera de la tabla de líneas. Los ajustes muestran el motivo.
func tableHeaderRow(kind string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	if kind == entity.MovementKindAdjustment {
		return row.New(8).Add(
			h("Cant.", 2, align.Center),
			h("Producto", 4, align.Left),
			h("SKU", 2, align.Left),
			h("Unidad", 1, align.Center),
			h("Motivo", 3, align.Left),
		)
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("SKU", 3, align.Left),
		h("Unidad", 2, align.Center),
	)
}

// tableItemRows: una fila por línea del movimiento.
func tableItemRows(mov *entity.Movement) []core.Row {
	result := make([]core.Row, 0, len(mov.Items))
	for _, it := range mov.Items {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
			}))
		}
		if mov.Kind == entity.MovementKindAdjustment {
			result = append(result, row.New(7).Add(
				cell(it.Quantity.String(), 2, align.Center),
				cell(it.Name, 4, align.Left),
				cell(it.SKU, 2, align.Left),
				cell(it.Unit, 1, align.Center),
				cell(it.Reason, 3, align.Left),
			))
			continue
		}
		result = append(result, row.New(7).Add(
			cell(it.Quantity.String(), 2, align.Center),
			cell(it.Name, 5, align.Left),
			cell(it.SKU, 3, align.Left),
			cell(it.Unit, 2, align.Center),
		))
	}
	return result
}

// summaryRow: total de unidades y estado del documento.
func summaryRow(mov *entity.Movement) core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New("Estado: "+mov.Status, props.Text{
				Size: 9, Top: 2, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(fmt.Sprintf("Total unidades: %s", mov.TotalQuantity()), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
