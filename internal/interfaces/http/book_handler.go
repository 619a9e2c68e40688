package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libreria-consola/internal/application/catalog"
	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/views"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// materiaSlots filas de materia prima que ofrece el formulario de alta de libro.
var materiaSlots = []int{1, 2, 3, 4}

// BookHandler catálogo de libros.
type BookHandler struct {
	uc        *catalog.BookUseCase
	materials *catalog.MaterialUseCase
	log       *logger.Logger
}

func NewBookHandler(uc *catalog.BookUseCase, materials *catalog.MaterialUseCase, log *logger.Logger) *BookHandler {
	return &BookHandler{uc: uc, materials: materials, log: log}
}

// Index GET /libros
func (h *BookHandler) Index(c *fiber.Ctx) error {
	ctx := c.UserContext()
	opts := []views.Option{}
	if items, err := h.materials.All(ctx); err == nil {
		opts = views.MaterialOptions(items)
	} else {
		h.log.Warn().Err(err).Msg("selector de materias primas sin datos")
	}
	return page(c, "libros", "Libros", fiber.Map{
		"Table":        h.uc.Table(ctx, listQuery(c).Q),
		"Materias":     opts,
		"MateriaSlots": materiaSlots,
	})
}

// Table GET /libros/tabla?q=
func (h *BookHandler) Table(c *fiber.Ctx) error {
	return fragment(c, "libros/table", h.uc.Table(c.UserContext(), listQuery(c).Q))
}

// Create POST /libros
func (h *BookHandler) Create(c *fiber.Ctx) error {
	req, err := parseCreateBook(c)
	if err != nil {
		return notifyError(c, err)
	}
	return fragment(c, "libros/outcome", h.uc.Create(c.UserContext(), mustSession(c), req))
}

// Edit GET /libros/:id/editar
func (h *BookHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	b, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return notifyError(c, err)
	}
	return fragment(c, "libros/edit", b)
}

// Update POST /libros/:id
func (h *BookHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	f := form(c)
	precio, err := f.OptionalDecimal("precio", "el precio")
	if err != nil {
		return notifyError(c, err)
	}
	req := dto.UpdateBookRequest{Nombre: f.OptionalText("nombre"), Precio: precio}
	return fragment(c, "libros/outcome", h.uc.Update(c.UserContext(), mustSession(c), id, req))
}

// Delete DELETE /libros/:id
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	return fragment(c, "libros/outcome", h.uc.Delete(c.UserContext(), mustSession(c), id))
}

func parseCreateBook(c *fiber.Ctx) (dto.CreateBookRequest, error) {
	f := form(c)
	precio, err := f.OptionalDecimal("precio", "el precio")
	if err != nil {
		return dto.CreateBookRequest{}, err
	}
	paginas, err := f.Int("paginas_por_libro", "las páginas por libro", 1, maxInt)
	if err != nil {
		return dto.CreateBookRequest{}, err
	}
	cantidad, err := f.Int("cantidad_libros", "la cantidad de libros", 0, maxInt)
	if err != nil {
		return dto.CreateBookRequest{}, err
	}
	materias, err := parseMaterias(c)
	if err != nil {
		return dto.CreateBookRequest{}, err
	}
	return dto.CreateBookRequest{
		Nombre:          f.Text("nombre"),
		Categoria:       f.OptionalText("categoria"),
		Descripcion:     f.OptionalText("descripcion"),
		Precio:          precio,
		PaginasPorLibro: paginas,
		CantidadLibros:  cantidad,
		Materias:        materias,
	}, nil
}

// parseMaterias empareja id_mp[i] con cantidad_mp[i]; las filas sin materia se ignoran.
// Una lista vacía se devuelve tal cual para que la validación la rechace.
func parseMaterias(c *fiber.Ctx) ([]dto.MaterialRequirementRequest, error) {
	args := c.Request().PostArgs()
	ids := args.PeekMulti("id_mp")
	cants := args.PeekMulti("cantidad_mp")

	out := []dto.MaterialRequirementRequest{}
	for i, raw := range ids {
		idText := strings.TrimSpace(string(raw))
		if idText == "" {
			continue
		}
		id, err := strconv.Atoi(idText)
		if err != nil || id <= 0 {
			return nil, &dto.FieldError{Field: "id_mp", Message: "Materia prima inválida."}
		}
		cantText := ""
		if i < len(cants) {
			cantText = strings.TrimSpace(string(cants[i]))
		}
		cant, err := strconv.Atoi(cantText)
		if err != nil || cant <= 0 {
			return nil, &dto.FieldError{Field: "cantidad", Message: "La cantidad de cada materia prima debe ser un número positivo."}
		}
		out = append(out, dto.MaterialRequirementRequest{MateriaPrimaID: id, Cantidad: cant})
	}
	return out, nil
}
