// Package xlsx exporta el inventario a una hoja de cálculo.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/jhoicas/libreria-consola/internal/application/reports"
	"github.com/jhoicas/libreria-consola/internal/domain/inventory"
)

// SheetName nombre de la hoja con el inventario.
const SheetName = "Inventario"

var headers = []string{"ID", "Libro", "Punto de venta", "Stock", "Stock mínimo", "Precio", "Valor", "Estado"}

var statusLabels = map[inventory.StockStatus]string{
	inventory.StockNormal:  "Normal",
	inventory.StockBajo:    "Bajo",
	inventory.StockAgotado: "Agotado",
}

// InventoryExporter implementa reports.InventoryExporter con tealeg/xlsx.
type InventoryExporter struct{}

var _ reports.InventoryExporter = (*InventoryExporter)(nil)

func NewInventoryExporter() *InventoryExporter { return &InventoryExporter{} }

// ExportInventory genera el archivo en memoria. Stock, mínimo, precio y valor
// se escriben como números para que la hoja pueda sumarlos.
func (e *InventoryExporter) ExportInventory(_ context.Context, data reports.InventorySheet) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: agregar hoja: %w", err)
	}

	title := "Inventario global"
	if data.PuntoVenta != "" {
		title = "Inventario: " + data.PuntoVenta
	}
	titleCell := sheet.AddRow().AddCell()
	titleCell.Value = fmt.Sprintf("%s (%s)", title, data.GeneratedAt.Format("02/01/2006 15:04"))
	titleCell.GetStyle().Font.Bold = true

	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.Value = h
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, r := range data.Records {
		row := sheet.AddRow()
		row.AddCell().SetInt(r.ID)
		row.AddCell().Value = r.Libro
		row.AddCell().Value = r.PuntoVenta
		row.AddCell().SetInt(r.Stock)

		minimo := row.AddCell()
		if m, ok := r.MinimumStock(); ok {
			minimo.SetInt(m)
		}

		precio := row.AddCell()
		valor := row.AddCell()
		if r.Precio != nil {
			p, _ := r.Precio.Float64()
			precio.SetFloat(p)
			v, _ := r.Precio.Mul(decimal.NewFromInt(int64(r.Stock))).Float64()
			valor.SetFloat(v)
		}

		estado := statusLabels[inventory.Classify(r.Stock)]
		if inventory.IsLow(r) {
			estado += " (bajo mínimo)"
		}
		row.AddCell().Value = estado
	}

	total := sheet.AddRow()
	total.AddCell()
	label := total.AddCell()
	label.Value = "Total"
	label.GetStyle().Font.Bold = true
	total.AddCell()
	total.AddCell().SetInt(inventory.TotalStock(data.Records))
	total.AddCell()
	total.AddCell()
	v, _ := inventory.InventoryValue(data.Records).Float64()
	total.AddCell().SetFloat(v)

	// Columnas 1-indexadas: Libro y Punto de venta más anchas.
	sheet.SetColWidth(1, len(headers), 15)
	sheet.SetColWidth(2, 2, 40)
	sheet.SetColWidth(3, 3, 25)

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("xlsx: escribir archivo: %w", err)
	}
	return buffer.Bytes(), nil
}
