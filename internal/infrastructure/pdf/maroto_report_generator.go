// Package pdf implementa la generación del reporte de inventario valorizado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Item | Categoría | Stock | P.Compra | P.Venta | Valor│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: items / unidades / valor del inventario            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/jhoicas/inventario-tienda/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	summary report.Summary,
	rows []report.Row,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(summary.StoreName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Tabla de items
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y fecha de generación (der).
func headerRow(summary report.Summary) core.Row {
	fecha := summary.GeneratedAt.Format("02/01/2006 15:04")

	return row.New(14).Add(
		col.New(7).Add(
			text.New(summary.StoreName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario valorizado a precio de compra", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, a align.Type) core.Component {
		return text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1})
	}
	return row.New(7).Add(
		col.New(4).Add(header("Item", align.Left)),
		col.New(2).Add(header("Categoría", align.Left)),
		col.New(1).Add(header("Stock", align.Right)),
		col.New(2).Add(header("P. Compra", align.Right)),
		col.New(1).Add(header("P. Venta", align.Right)),
		col.New(2).Add(header("Valor", align.Right)),
	)
}

func tableDetailRow(r report.Row) core.Row {
	cell := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{Size: 8, Align: a, Top: 1})
	}
	return row.New(6).Add(
		col.New(4).Add(cell(r.ItemName, align.Left)),
		col.New(2).Add(cell(r.CategoryName, align.Left)),
		col.New(1).Add(cell(strconv.FormatInt(r.CurrentStock, 10), align.Right)),
		col.New(2).Add(cell(r.PurchasePrice.StringFixed(2), align.Right)),
		col.New(1).Add(cell(r.SellingPrice.StringFixed(2), align.Right)),
		col.New(2).Add(cell(r.StockValue.StringFixed(2), align.Right)),
	)
}

func totalsRow(summary report.Summary) core.Row {
	resumen := fmt.Sprintf("%d items   |   %d unidades en stock", summary.TotalItems, summary.TotalUnits)
	return row.New(10).Add(
		col.New(7).Add(
			text.New(resumen, props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("VALOR TOTAL: "+summary.TotalValue.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}
