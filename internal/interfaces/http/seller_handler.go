package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libreria-consola/internal/application/inventory"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/domain"
)

var errNoPointOfSale = listing.Explain(domain.ErrForbidden,
	"Tu usuario no tiene un punto de venta asignado. Pide a un administrador que te asigne uno.")

// SellerHandler vista del vendedor: inventario de su punto de venta y venta unitaria.
type SellerHandler struct {
	seller *inventory.SellerUseCase
	stock  *inventory.StockUseCase
}

func NewSellerHandler(seller *inventory.SellerUseCase, stock *inventory.StockUseCase) *SellerHandler {
	return &SellerHandler{seller: seller, stock: stock}
}

// Index GET /vendedor
// Sin punto de venta asignado se muestra la página de error en lugar de la tabla.
func (h *SellerHandler) Index(c *fiber.Ctx) error {
	sess := mustSession(c)
	p, err := h.seller.Page(c.UserContext(), sess)
	if err != nil {
		return page(c.Status(fiber.StatusForbidden), "error", "Sin punto de venta", fiber.Map{
			"Message": listing.UserMessage(errNoPointOfSale),
			"Home":    "/logout",
		})
	}
	return page(c, "vendedor", p.PuntoVenta, fiber.Map{"Page": p})
}

// Table GET /vendedor/tabla
func (h *SellerHandler) Table(c *fiber.Ctx) error {
	return fragment(c, "vendedor/table", h.seller.Table(c.UserContext(), mustSession(c)))
}

// Sell POST /vendedor/:id/vender
// El stock que el vendedor estaba viendo viaja en el formulario; si era 0 no se llama al backend.
func (h *SellerHandler) Sell(c *fiber.Ctx) error {
	sess := mustSession(c)
	if !sess.HasPointOfSale() {
		return notifyError(c, errNoPointOfSale)
	}
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	shown, err := form(c).Int("stock", "el stock", 0, maxInt)
	if err != nil {
		return notifyError(c, err)
	}
	return fragment(c, "vendedor/outcome", h.stock.SellOne(c.UserContext(), sess, id, shown))
}
