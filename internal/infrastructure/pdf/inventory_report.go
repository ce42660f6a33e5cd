// Package pdf renderiza el reporte de inventario en A4 con Maroto v2.
//
//	┌──────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha + generado por               │
//	│  TABLA: SKU | Nombre | Categoría | Stock | Precio | Valor │
//	│  TOTALES: unidades / valor del inventario            │
//	└──────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-tareas-api/internal/application/usecase"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
)

var _ usecase.ReportRenderer = (*InventoryRenderer)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// InventoryRenderer implementa usecase.ReportRenderer para "pdf".
type InventoryRenderer struct{}

// NewInventoryRenderer construye el renderer.
func NewInventoryRenderer() *InventoryRenderer { return &InventoryRenderer{} }

func (r *InventoryRenderer) Format() string      { return "pdf" }
func (r *InventoryRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (r *InventoryRenderer) Render(_ context.Context, report *usecase.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		WithAuthor(nonEmpty(report.GeneratedBy, "sistema"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	if len(report.Products) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin productos registrados", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)))
	}
	m.AddRows(productRows(report.Products)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(report *usecase.InventoryReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d productos", len(report.Products)), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Generado por: "+nonEmpty(report.GeneratedBy, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Nombre", 3, align.Left),
		h("Categoría", 2, align.Left),
		h("Stock", 1, align.Center),
		h("Precio", 2, align.Right),
		h("Valor", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func productRows(products []*entity.Product) []core.Row {
	rows := make([]core.Row, 0, len(products))
	for _, p := range products {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
		}
		rows = append(rows, row.New(7).Add(
			cell(p.SKU, 2, align.Left),
			cell(p.Nombre, 3, align.Left),
			cell(p.Categoria, 2, align.Left),
			cell(fmt.Sprintf("%d", p.Stock), 1, align.Center),
			cell(formatMoney(p.Precio), 2, align.Right),
			cell(formatMoney(p.InventoryValue()), 2, align.Right),
		))
	}
	return rows
}

func totalsRow(report *usecase.InventoryReport) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			label("Unidades:"),
			text.New("VALOR TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 6,
			}),
		),
		col.New(3).Add(
			text.New(fmt.Sprintf("%d", report.TotalUnits), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New(formatMoney(report.TotalValue), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 6,
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

// formatMoney formatea con puntos de miles y coma decimal.
// Ej: 1999.5 → "$1.999,50"
func formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	s := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + "$" + string(buf) + "," + frac
}
