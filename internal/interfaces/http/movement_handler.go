package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libreria-consola/internal/application/inventory"
)

// MovementHandler historial de movimientos (solo lectura).
type MovementHandler struct {
	uc *inventory.MovementsUseCase
}

func NewMovementHandler(uc *inventory.MovementsUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Index GET /movimientos
func (h *MovementHandler) Index(c *fiber.Ctx) error {
	return page(c, "movimientos", "Movimientos", fiber.Map{
		"Table": h.uc.Table(c.UserContext(), listQuery(c).Q),
	})
}

// Table GET /movimientos/tabla?q=
func (h *MovementHandler) Table(c *fiber.Ctx) error {
	return fragment(c, "movimientos/table", h.uc.Table(c.UserContext(), listQuery(c).Q))
}
