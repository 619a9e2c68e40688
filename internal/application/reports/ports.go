package reports

import (
	"context"
	"time"

	"github.com/jhoicas/libreria-consola/internal/application/views"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

// AlertReport datos del reporte de stock bajo.
type AlertReport struct {
	GeneratedAt time.Time
	GeneratedBy string
	Rows        []views.AlertRow
	// Notes avisos de colecciones que no se pudieron consultar.
	Notes []string
}

// InventorySheet datos de la exportación de inventario.
type InventorySheet struct {
	GeneratedAt time.Time
	PuntoVenta  string // vacío = inventario global
	Records     []entity.InventoryRecord
}

// AlertPDFGenerator genera el PDF del reporte de alertas.
type AlertPDFGenerator interface {
	GenerateAlertsPDF(ctx context.Context, report AlertReport) ([]byte, error)
}

// InventoryExporter genera la hoja de cálculo del inventario.
type InventoryExporter interface {
	ExportInventory(ctx context.Context, sheet InventorySheet) ([]byte, error)
}
