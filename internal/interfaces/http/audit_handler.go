package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libreria-consola/internal/application/analytics"
)

// AuditHandler bitácora local de acciones de la consola.
type AuditHandler struct {
	uc *analytics.AuditUseCase
}

func NewAuditHandler(uc *analytics.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// Index GET /bitacora
func (h *AuditHandler) Index(c *fiber.Ctx) error {
	return page(c, "bitacora", "Bitácora", fiber.Map{"Table": h.uc.Table(c.UserContext())})
}
