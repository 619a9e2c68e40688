package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/libreria-consola/internal/application/catalog"
	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/inventory"
	"github.com/jhoicas/libreria-consola/internal/application/views"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// InventoryHandler inventario por punto de venta (vista del administrador).
type InventoryHandler struct {
	stock *inventory.StockUseCase
	books *catalog.BookUseCase
	pos   *catalog.PointOfSaleUseCase
	log   *logger.Logger
}

func NewInventoryHandler(stock *inventory.StockUseCase, books *catalog.BookUseCase, pos *catalog.PointOfSaleUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{stock: stock, books: books, pos: pos, log: log}
}

// Index GET /inventario?pv=
// La tabla y los dos selectores se cargan en paralelo.
func (h *InventoryHandler) Index(c *fiber.Ctx) error {
	ctx := c.UserContext()
	pv := queryPV(c)

	var (
		table  dto.TableView[views.InventoryRow]
		books  []entity.Book
		points []entity.PointOfSale
	)
	var g errgroup.Group
	g.Go(func() error {
		table = h.stock.Table(ctx, pv, "")
		return nil
	})
	g.Go(func() error {
		var err error
		if books, err = h.books.All(ctx); err != nil {
			h.log.Warn().Err(err).Msg("selector de libros sin datos")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if points, err = h.pos.All(ctx); err != nil {
			h.log.Warn().Err(err).Msg("selector de puntos de venta sin datos")
		}
		return nil
	})
	_ = g.Wait()

	return page(c, "inventario", "Inventario", fiber.Map{
		"Table":       table,
		"PV":          pv,
		"Libros":      views.BookOptions(books),
		"PuntosVenta": views.PointOfSaleOptions(points, pv),
	})
}

// Table GET /inventario/tabla?pv=
func (h *InventoryHandler) Table(c *fiber.Ctx) error {
	pv := queryPV(c)
	return fragment(c, "inventario/table", fiber.Map{
		"Table": h.stock.Table(c.UserContext(), pv, listQuery(c).Q),
		"PV":    pv,
	})
}

func (h *InventoryHandler) outcome(c *fiber.Ctx, out dto.Outcome[views.InventoryRow], pv int) error {
	return fragment(c, "inventario/outcome", fiber.Map{"Outcome": out, "PV": pv})
}

// Provision POST /inventario
func (h *InventoryHandler) Provision(c *fiber.Ctx) error {
	f := form(c)
	libro, err := f.Int("id_libro", "el libro", 1, maxInt)
	if err != nil {
		return notifyError(c, err)
	}
	pv, err := f.Int("id_punto_venta", "el punto de venta", 1, maxInt)
	if err != nil {
		return notifyError(c, err)
	}
	stock, err := f.Int("stock", "el stock inicial", 0, maxInt)
	if err != nil {
		return notifyError(c, err)
	}
	minimo, err := f.Int("stock_minimo", "el stock mínimo", 0, maxInt)
	if err != nil {
		return notifyError(c, err)
	}
	req := dto.CreateInventoryRecordRequest{LibroID: libro, PuntoVentaID: pv, Stock: stock, StockMinimo: &minimo}
	return h.outcome(c, h.stock.Provision(c.UserContext(), mustSession(c), req), pv)
}

// Adjust POST /inventario/:id/ajustar (delta con signo)
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	delta, err := form(c).Int("delta", "el ajuste", -inventory.MaxAdjust, inventory.MaxAdjust)
	if err != nil {
		return notifyError(c, err)
	}
	pv := queryPV(c)
	return h.outcome(c, h.stock.Adjust(c.UserContext(), mustSession(c), id, delta, pv), pv)
}

// Sell POST /inventario/:id/vender
func (h *InventoryHandler) Sell(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notifyError(c, err)
	}
	cantidad, err := form(c).Int("cantidad", "la cantidad", 1, inventory.MaxSaleQty)
	if err != nil {
		return notifyError(c, err)
	}
	pv := queryPV(c)
	return h.outcome(c, h.stock.RecordSale(c.UserContext(), mustSession(c), id, cantidad, pv), pv)
}
