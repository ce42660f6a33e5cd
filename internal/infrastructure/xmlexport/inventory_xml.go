// Package xmlexport exporta el reporte de inventario como documento XML.
package xmlexport

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/inventario-tareas-api/internal/application/usecase"
)

var _ usecase.ReportRenderer = (*InventoryRenderer)(nil)

// InventoryRenderer implementa usecase.ReportRenderer para "xml".
type InventoryRenderer struct {
	indent int
}

// NewInventoryRenderer construye el renderer con sangría de 2 espacios.
func NewInventoryRenderer() *InventoryRenderer { return &InventoryRenderer{indent: 2} }

func (r *InventoryRenderer) Format() string      { return "xml" }
func (r *InventoryRenderer) ContentType() string { return "application/xml" }

// Render produce:
//
//	<inventario generado="..." por="...">
//	  <producto id="..." sku="..."><nombre/><categoria/><stock/><precio/><valor/></producto>
//	  <totales><productos/><unidades/><valor/></totales>
//	</inventario>
func (r *InventoryRenderer) Render(_ context.Context, report *usecase.InventoryReport) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("inventario")
	root.CreateAttr("generado", report.GeneratedAt.UTC().Format(time.RFC3339))
	if report.GeneratedBy != "" {
		root.CreateAttr("por", report.GeneratedBy)
	}

	for _, p := range report.Products {
		el := root.CreateElement("producto")
		el.CreateAttr("id", p.ID)
		el.CreateAttr("sku", p.SKU)
		el.CreateElement("nombre").SetText(p.Nombre)
		el.CreateElement("categoria").SetText(p.Categoria)
		el.CreateElement("stock").SetText(strconv.Itoa(p.Stock))
		el.CreateElement("precio").SetText(p.Precio.StringFixed(2))
		el.CreateElement("valor").SetText(p.InventoryValue().StringFixed(2))
	}

	totals := root.CreateElement("totales")
	totals.CreateElement("productos").SetText(strconv.Itoa(len(report.Products)))
	totals.CreateElement("unidades").SetText(strconv.Itoa(report.TotalUnits))
	totals.CreateElement("valor").SetText(report.TotalValue.StringFixed(2))

	doc.Indent(r.indent)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar reporte: %w", err)
	}
	return out, nil
}
