package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/application/views"
)

// errSilent el detalle ya se imprimió; solo cambia el código de salida.
var errSilent = errors.New("")

var (
	colorPrimary = lipgloss.Color("#00467F")
	colorAlert   = lipgloss.Color("#B02020")
	colorOK      = lipgloss.Color("#2E7D32")
	colorWarning = lipgloss.Color("#B8860B")

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	lowStyle     = cellStyle.Foreground(colorAlert)
	successStyle = lipgloss.NewStyle().Foreground(colorOK)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAlert)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	mutedStyle   = lipgloss.NewStyle().Italic(true)
)

func userMessage(err error) string { return listing.UserMessage(err) }

func printWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, warningStyle.Render("⚠ "+msg))
}

// printOutcome imprime el aviso de una mutación; un error devuelve errSilent.
func printOutcome[R any](w io.Writer, out dto.Outcome[R]) error {
	n := out.Notification
	switch n.Level {
	case dto.NotifySuccess:
		fmt.Fprintln(w, successStyle.Render("✓ "+n.Message))
		return nil
	case dto.NotifyWarning:
		printWarning(w, n.Message)
		return nil
	default:
		fmt.Fprintln(w, errorStyle.Render("✗ "+n.Message))
		return errSilent
	}
}

func printAlerts(w io.Writer, rows []views.AlertRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No hay alertas de stock."))
		return
	}
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{r.Tipo, r.Nombre, r.Detalle, views.Int(r.Actual), views.Int(r.Minimo), views.Int(r.Faltante)}
	}
	t := newTable("Tipo", "Nombre", "Detalle", "Actual", "Mínimo", "Faltante").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 5:
				return lowStyle.Bold(true)
			default:
				return cellStyle
			}
		})
	fmt.Fprintln(w, t.Render())
}

func printInventory(w io.Writer, tv dto.TableView[views.InventoryRow]) {
	if p := tv.Placeholder; p != nil {
		if p.Kind == dto.PlaceholderError {
			fmt.Fprintln(w, errorStyle.Render("✗ "+p.Message))
		} else {
			fmt.Fprintln(w, mutedStyle.Render(p.Message))
		}
		return
	}
	data := make([][]string, len(tv.Rows))
	for i, r := range tv.Rows {
		data[i] = []string{views.Int(r.ID), r.Libro, r.PuntoVenta, r.StockText, r.StockMinimo, r.Precio, r.StatusLabel}
	}
	t := newTable("ID", "Libro", "Punto de venta", "Stock", "Mínimo", "Precio", "Estado").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(tv.Rows) && tv.Rows[row].Low {
				return lowStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorPrimary)).
		Headers(headers...)
}
