package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libreria-consola/internal/application/catalog"
	"github.com/jhoicas/libreria-consola/internal/application/dto"
)

// MaterialHandler materias primas: catálogo y entradas de stock.
type MaterialHandler struct {
	uc *catalog.MaterialUseCase
}

func NewMaterialHandler(uc *catalog.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// Index GET /materias-primas
func (h *MaterialHandler) Index(c *fiber.Ctx) error {
	return page(c, "materias", "Materias primas", fiber.Map{
		"Table": h.uc.Table(c.UserContext(), listQuery(c).Q),
	})
}

// Table GET /materias-primas/tabla?q=
func (h *MaterialHandler) Table(c *fiber.Ctx) error {
	return fragment(c, "materias/table", h.uc.Table(c.UserContext(), listQuery(c).Q))
}

// Create POST /materias-primas
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	f := form(c)
	minimo, err := f.Int("stock_minimo", "el stock mínimo", 0, maxInt)
	if err != nil {
		return notifyError(c, err)
	}
	actual, err := f.Int("stock_actual", "el stock actual", 0, maxInt)
	if err != nil {
		return notifyError(c, err)
	}
	req := dto.CreateMaterialRequest{
		Nombre:      f.Text("nombre"),
		Unidad:      f.Text("unidad"),
		StockMinimo: minimo,
		StockActual: actual,
	}
	return fragment(c, "materias/outcome", h.uc.Create(c.UserContext(), mustSession(c), req))
}

// Edit GET /materias-primas/:id/editar
func (h *MaterialHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	m, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return notifyError(c, err)
	}
	return fragment(c, "materias/edit", m)
}

// Update POST /materias-primas/:id
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	f := form(c)
	minimo, err := f.OptionalInt("stock_minimo", "el stock mínimo", 0, maxInt)
	if err != nil {
		return notifyError(c, err)
	}
	req := dto.UpdateMaterialRequest{
		Nombre:      f.OptionalText("nombre"),
		Unidad:      f.OptionalText("unidad"),
		StockMinimo: minimo,
	}
	return fragment(c, "materias/outcome", h.uc.Update(c.UserContext(), mustSession(c), id, req))
}

// Delete DELETE /materias-primas/:id
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	return fragment(c, "materias/outcome", h.uc.Delete(c.UserContext(), mustSession(c), id))
}

// Entry POST /materias-primas/:id/entrada
func (h *MaterialHandler) Entry(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	f := form(c)
	cantidad, err := f.Int("cantidad", "la cantidad", 1, maxInt)
	if err != nil {
		return notifyError(c, err)
	}
	out := h.uc.RegisterEntry(c.UserContext(), mustSession(c), id, cantidad, f.OptionalText("observaciones"))
	return fragment(c, "materias/outcome", out)
}
