package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libreria-consola/internal/application/catalog"
	"github.com/jhoicas/libreria-consola/internal/application/dto"
)

type PointOfSaleHandler struct {
	uc *catalog.PointOfSaleUseCase
}

func NewPointOfSaleHandler(uc *catalog.PointOfSaleUseCase) *PointOfSaleHandler {
	return &PointOfSaleHandler{uc: uc}
}

// Index GET /puntos-venta
func (h *PointOfSaleHandler) Index(c *fiber.Ctx) error {
	return page(c, "puntos", "Puntos de venta", fiber.Map{
		"Table": h.uc.Table(c.UserContext(), listQuery(c).Q),
	})
}

// Table GET /puntos-venta/tabla?q=
func (h *PointOfSaleHandler) Table(c *fiber.Ctx) error {
	return fragment(c, "puntos/table", h.uc.Table(c.UserContext(), listQuery(c).Q))
}

// Create POST /puntos-venta
func (h *PointOfSaleHandler) Create(c *fiber.Ctx) error {
	f := form(c)
	req := dto.CreatePointOfSaleRequest{
		Nombre:    f.Text("nombre"),
		Ubicacion: f.Text("ubicacion"),
		Tipo:      f.Text("tipo"),
	}
	return fragment(c, "puntos/outcome", h.uc.Create(c.UserContext(), mustSession(c), req))
}

// Edit GET /puntos-venta/:id/editar
func (h *PointOfSaleHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	p, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return notifyError(c, err)
	}
	return fragment(c, "puntos/edit", p)
}

// Update POST /puntos-venta/:id
func (h *PointOfSaleHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	f := form(c)
	req := dto.UpdatePointOfSaleRequest{
		Nombre:    f.OptionalText("nombre"),
		Ubicacion: f.OptionalText("ubicacion"),
		Tipo:      f.OptionalText("tipo"),
	}
	return fragment(c, "puntos/outcome", h.uc.Update(c.UserContext(), mustSession(c), id, req))
}

// Delete DELETE /puntos-venta/:id
func (h *PointOfSaleHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	return fragment(c, "puntos/outcome", h.uc.Delete(c.UserContext(), mustSession(c), id))
}
