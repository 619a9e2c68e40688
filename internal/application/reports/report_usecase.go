package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/libreria-consola/internal/application/inventory"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// ReportUseCase descargas: PDF de alertas y XLSX de inventario.
type ReportUseCase struct {
	alerts *inventory.AlertsUseCase
	stock  *inventory.StockUseCase
	pos    ports.PointOfSaleGateway
	pdf    AlertPDFGenerator
	xlsx   InventoryExporter
	log    *logger.Logger
	now    func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	alerts *inventory.AlertsUseCase,
	stock *inventory.StockUseCase,
	pos ports.PointOfSaleGateway,
	pdf AlertPDFGenerator,
	xlsx InventoryExporter,
	log *logger.Logger,
) *ReportUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportUseCase{alerts: alerts, stock: stock, pos: pos, pdf: pdf, xlsx: xlsx, log: log.Component("reportes"), now: time.Now}
}

// AlertsPDF escanea el stock bajo y genera el PDF. Si una colección falla el reporte
// sale con las alertas de la otra y una nota; si fallan las dos se devuelve el error.
//
// Retorna (pdfBytes, filename, nil) si todo sale bien.
func (uc *ReportUseCase) AlertsPDF(ctx context.Context, sess entity.Session) ([]byte, string, error) {
	a := uc.alerts.Scan(ctx)
	if a.BooksErr != nil && a.MaterialsErr != nil {
		return nil, "", fmt.Errorf("reportes: escanear alertas: %w", a.BooksErr)
	}

	report := AlertReport{GeneratedAt: uc.now(), GeneratedBy: sess.Nombre, Rows: a.Rows()}
	if a.BooksErr != nil {
		report.Notes = append(report.Notes, "Inventario de libros no disponible: "+listing.UserMessage(a.BooksErr))
	}
	if a.MaterialsErr != nil {
		report.Notes = append(report.Notes, "Materias primas no disponibles: "+listing.UserMessage(a.MaterialsErr))
	}

	b, err := uc.pdf.GenerateAlertsPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reportes: generar pdf: %w", err)
	}
	uc.log.Info().Int("alertas", len(report.Rows)).Str("usuario", sess.Nombre).Msg("reporte de alertas generado")
	return b, fmt.Sprintf("alertas-stock-%s.pdf", report.GeneratedAt.Format("20060102-1504")), nil
}

// InventoryXLSX exporta el inventario global (pointOfSaleID 0) o el de un punto de venta.
func (uc *ReportUseCase) InventoryXLSX(ctx context.Context, pointOfSaleID int) ([]byte, string, error) {
	records, err := uc.stock.Records(ctx, pointOfSaleID, "")
	if err != nil {
		return nil, "", fmt.Errorf("reportes: obtener inventario: %w", err)
	}

	sheet := InventorySheet{GeneratedAt: uc.now(), Records: records}
	name := "inventario"
	if pointOfSaleID > 0 {
		name = fmt.Sprintf("inventario-pv-%d", pointOfSaleID)
		if p, err := uc.pos.GetPointOfSale(ctx, pointOfSaleID); err == nil {
			sheet.PuntoVenta = p.Nombre
		} else {
			uc.log.Warn().Err(err).Int("punto_venta_id", pointOfSaleID).Msg("nombre del punto de venta no disponible")
			sheet.PuntoVenta = fmt.Sprintf("#%d", pointOfSaleID)
		}
	}

	b, err := uc.xlsx.ExportInventory(ctx, sheet)
	if err != nil {
		return nil, "", fmt.Errorf("reportes: generar xlsx: %w", err)
	}
	return b, fmt.Sprintf("%s-%s.xlsx", name, sheet.GeneratedAt.Format("20060102")), nil
}
