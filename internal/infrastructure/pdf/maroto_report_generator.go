// Package pdf implementa la generación del reporte PDF del inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación + solicitante          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Empresa | Cantidad | Precio COP  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE REGISTROS                                          │
//	└─────────────────────────────────────────────────────────────┘
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/catalogo-api/internal/application/report"
)

// ── Paleta de colores ────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// num agrupa dígitos al estilo es-CO para cantidades y precios.
var num = message.NewPrinter(language.Spanish)

// ── Generator ────────────────────────────────────────────────────────────────

// Asegura que MarotoReportGenerator implementa report.InventoryPDFGenerator.
var _ report.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(_ context.Context, data *report.Data) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range data.Rows {
		m.AddRows(detailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(len(data.Rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ────────────────────────────────────────────────────────────────

// headerRow: título (izq), fecha de generación y solicitante (der).
func headerRow(data *report.Data) core.Row {
	fecha := data.GeneratedAt.Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Solicitado por: "+data.RequestedBy, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de registros.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("CÓDIGO", 2, align.Left),
		h("PRODUCTO", 4, align.Left),
		h("EMPRESA", 3, align.Left),
		h("CANT.", 1, align.Right),
		h("PRECIO COP", 2, align.Right),
	)
}

// detailRow: una fila de inventario.
func detailRow(r report.Row) core.Row {
	return row.New(6).Add(
		col.New(2).Add(text.New(r.ProductCode, props.Text{Size: 8, Top: 1})),
		col.New(4).Add(text.New(r.ProductName, props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(r.CompanyName, props.Text{Size: 8, Top: 1, Color: colorGray})),
		col.New(1).Add(text.New(num.Sprintf("%d", r.Quantity), props.Text{
			Size: 8, Top: 1, Align: align.Right,
		})),
		col.New(2).Add(text.New("$ "+num.Sprintf("%.2f", r.PriceCOP.InexactFloat64()), props.Text{
			Size: 8, Top: 1, Align: align.Right,
		})),
	)
}

// totalsRow: conteo de registros del reporte.
func totalsRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(num.Sprintf("Total de registros: %d", count), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
		),
	)
}
