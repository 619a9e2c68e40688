// Package pdf genera el reporte de alertas de stock bajo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Librería + título    │  Fecha + generado por        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: libros / materias primas / avisos                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tipo | Nombre | Detalle | Actual | Mínimo | Faltante │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: regla de alerta                                     │
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

	"github.com/jhoicas/libreria-consola/internal/application/reports"
	"github.com/jhoicas/libreria-consola/internal/application/views"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorAlert   = &props.Color{Red: 176, Green: 32, Blue: 32}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa reports.AlertPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	storeName string
}

var _ reports.AlertPDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador; storeName encabeza el reporte.
func NewMarotoPDFGenerator(storeName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{storeName: nonEmpty(storeName, "Librería")}
}

// GenerateAlertsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateAlertsPDF(_ context.Context, report reports.AlertReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Alertas de stock bajo", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(report.Rows)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: librería y título (izq), fecha y usuario (der).
func (g *MarotoPDFGenerator) headerRow(report reports.AlertReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de alertas de stock bajo", props.Text{
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

// summaryRows: conteo por tipo y avisos de colecciones no disponibles.
func summaryRows(report reports.AlertReport) []core.Row {
	libros, materias := 0, 0
	for _, r := range report.Rows {
		if r.Tipo == "Libro" {
			libros++
		} else {
			materias++
		}
	}
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Libros bajo mínimo: %d   |   Materias primas bajo mínimo: %d", libros, materias), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 3,
			}),
		)),
	}
	for _, n := range report.Notes {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(n, props.Text{Size: 8, Color: colorAlert, Top: 1}),
		)))
	}
	if len(report.Rows) == 0 {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("No hay alertas de stock.", props.Text{Size: 9, Top: 2, Color: colorGray}),
		)))
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla con fondo de color.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tipo", 2, align.Left),
		h("Nombre", 4, align.Left),
		h("Punto de venta / unidad", 3, align.Left),
		h("Actual", 1, align.Right),
		h("Mínimo", 1, align.Right),
		h("Faltante", 1, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por alerta, en el orden del backend.
func tableDetailRows(alerts []views.AlertRow) []core.Row {
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(a.Tipo, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(a.Nombre, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(a.Detalle, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(views.Int(a.Actual), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(views.Int(a.Minimo), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(views.Int(a.Faltante), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorAlert,
			})),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Un elemento aparece en este reporte cuando su stock actual es menor que su stock mínimo.", props.Text{
			Size: 6.5, Color: colorGray, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
