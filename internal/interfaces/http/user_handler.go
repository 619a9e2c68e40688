package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libreria-consola/internal/application/catalog"
	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/views"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// UserHandler usuarios del backend. Los selectores de punto de venta se cargan en cada
// render; si fallan el formulario queda sin opciones y la tabla sigue funcionando.
type UserHandler struct {
	uc  *catalog.UserUseCase
	pos *catalog.PointOfSaleUseCase
	log *logger.Logger
}

func NewUserHandler(uc *catalog.UserUseCase, pos *catalog.PointOfSaleUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, pos: pos, log: log}
}

func (h *UserHandler) posOptions(c *fiber.Ctx, selected int) []views.Option {
	items, err := h.pos.All(c.UserContext())
	if err != nil {
		h.log.Warn().Err(err).Msg("selector de puntos de venta sin datos")
		return []views.Option{}
	}
	return views.PointOfSaleOptions(items, selected)
}

// Index GET /usuarios
func (h *UserHandler) Index(c *fiber.Ctx) error {
	return page(c, "usuarios", "Usuarios", fiber.Map{
		"Table":       h.uc.Table(c.UserContext(), listQuery(c).Q),
		"PuntosVenta": h.posOptions(c, 0),
	})
}

// Table GET /usuarios/tabla?q=
func (h *UserHandler) Table(c *fiber.Ctx) error {
	return fragment(c, "usuarios/table", h.uc.Table(c.UserContext(), listQuery(c).Q))
}

// Create POST /usuarios
func (h *UserHandler) Create(c *fiber.Ctx) error {
	f := form(c)
	pv, err := f.OptionalInt("punto_venta_id", "el punto de venta", 1, maxInt)
	if err != nil {
		return notifyError(c, err)
	}
	req := dto.CreateUserRequest{
		Nombre:       f.Text("nombre"),
		Email:        f.Text("email"),
		Rol:          f.Text("rol"),
		PuntoVentaID: pv,
		Contrasena:   c.FormValue("contrasena"),
	}
	return fragment(c, "usuarios/outcome", h.uc.Create(c.UserContext(), mustSession(c), req))
}

// Edit GET /usuarios/:id/editar
func (h *UserHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	u, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return notifyError(c, err)
	}
	selected := 0
	if u.PuntoVentaID != nil {
		selected = *u.PuntoVentaID
	}
	return fragment(c, "usuarios/edit", fiber.Map{
		"User":        u,
		"PuntosVenta": h.posOptions(c, selected),
	})
}

// Update POST /usuarios/:id
// Una contraseña vacía no se envía: el backend conserva la actual.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	f := form(c)
	pv, err := f.OptionalInt("punto_venta_id", "el punto de venta", 1, maxInt)
	if err != nil {
		return notifyError(c, err)
	}
	req := dto.UpdateUserRequest{
		Nombre:       f.OptionalText("nombre"),
		Email:        f.OptionalText("email"),
		Rol:          f.OptionalText("rol"),
		PuntoVentaID: pv,
	}
	if pw := c.FormValue("contrasena"); pw != "" {
		req.Contrasena = &pw
	}
	return fragment(c, "usuarios/outcome", h.uc.Update(c.UserContext(), mustSession(c), id, req))
}

// Delete DELETE /usuarios/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	return fragment(c, "usuarios/outcome", h.uc.Delete(c.UserContext(), mustSession(c), id))
}
