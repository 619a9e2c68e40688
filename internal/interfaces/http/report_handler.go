package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/application/reports"
)

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler descargas: alertas en PDF e inventario en Excel.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// AlertsPDF GET /reportes/alertas.pdf
func (h *ReportHandler) AlertsPDF(c *fiber.Ctx) error {
	body, name, err := h.uc.AlertsPDF(c.UserContext(), mustSession(c))
	if err != nil {
		return h.failed(c, err)
	}
	return download(c, mimePDF, name, body)
}

// InventoryXLSX GET /reportes/inventario.xlsx?pv=
func (h *ReportHandler) InventoryXLSX(c *fiber.Ctx) error {
	body, name, err := h.uc.InventoryXLSX(c.UserContext(), queryPV(c))
	if err != nil {
		return h.failed(c, err)
	}
	return download(c, mimeXLSX, name, body)
}

// Las descargas son navegación normal, no htmx: el error se muestra como página.
func (h *ReportHandler) failed(c *fiber.Ctx, err error) error {
	return page(c.Status(statusFor(err)), "error", "No se pudo generar el reporte", fiber.Map{
		"Message": listing.UserMessage(err),
		"Home":    "/admin",
	})
}

func download(c *fiber.Ctx, mime, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(body)
}
