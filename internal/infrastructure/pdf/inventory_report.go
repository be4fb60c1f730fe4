// Package pdf genera el reporte imprimible del inventario actual.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Categoría | Unidad | Stock | Alerta │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: productos listados / unidades totales              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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

	"github.com/acamargo/almacen-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// InventoryReportGenerator implementa usecase.InventoryReportGenerator usando Maroto v2.
type InventoryReportGenerator struct{}

// NewInventoryReportGenerator construye el generador.
func NewInventoryReportGenerator() *InventoryReportGenerator { return &InventoryReportGenerator{} }

// Generate genera el PDF del inventario y devuelve sus bytes.
func (g *InventoryReportGenerator) Generate(rows []*repository.InventoryRow, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(detailRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, size int) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
		)
	}
	return row.New(6).Add(
		header("SKU", 2),
		header("Producto", 4),
		header("Categoría", 2),
		header("Unidad", 1),
		header("Stock", 1),
		header("Alerta", 2),
	)
}

func detailRow(r *repository.InventoryRow) core.Row {
	cell := func(value string, size int, color *props.Color) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Color: color}))
	}
	alert := ""
	alertColor := colorGray
	if r.Inventory.LowStock() {
		alert = "STOCK BAJO"
		alertColor = colorAlert
	}
	return row.New(5).Add(
		cell(r.ProductSKU, 2, nil),
		cell(r.ProductName, 4, nil),
		cell(r.CategoryName, 2, colorGray),
		cell(r.ProductUnit, 1, colorGray),
		cell(fmt.Sprintf("%d", r.Inventory.Quantity), 1, nil),
		cell(alert, 2, alertColor),
	)
}

func totalsRow(rows []*repository.InventoryRow) core.Row {
	totalUnits := 0
	for _, r := range rows {
		totalUnits += r.Inventory.Quantity
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Productos listados: %d   |   Unidades totales: %d",
				len(rows), totalUnits,
			), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2}),
		),
	)
}
