package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libreria-consola/internal/application/analytics"
)

// DashboardHandler panel del administrador.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Index GET /admin
//
// Contadores, alertas de stock bajo y puntos de venta. Cada sección que falle muestra
// su propio aviso; la página siempre responde 200.
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	return page(c, "dashboard", "Panel", fiber.Map{
		"Summary": h.uc.GetSummary(c.UserContext()),
	})
}
