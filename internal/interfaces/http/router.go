package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libreria-consola/internal/application/analytics"
	"github.com/jhoicas/libreria-consola/internal/application/auth"
	"github.com/jhoicas/libreria-consola/internal/application/catalog"
	"github.com/jhoicas/libreria-consola/internal/application/inventory"
	"github.com/jhoicas/libreria-consola/internal/application/reports"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	BookUC      *catalog.BookUseCase
	MaterialUC  *catalog.MaterialUseCase
	PointUC     *catalog.PointOfSaleUseCase
	UserUC      *catalog.UserUseCase
	StockUC     *inventory.StockUseCase
	SellerUC    *inventory.SellerUseCase
	MovementsUC *inventory.MovementsUseCase
	DashboardUC *analytics.DashboardUseCase
	AuditUC     *analytics.AuditUseCase
	ReportUC    *reports.ReportUseCase
	Cookie      CookieConfig
	AppName     string
	Log         *logger.Logger
}

// Router registra las rutas de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)
	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/login", fiber.StatusSeeOther) })

	// Cada grupo lleva su propio guard: un grupo con prefijo vacío aplicaría el rol a todas las rutas.
	guard := SessionGuard(deps.AuthUC, deps.Cookie.Name)
	adminOnly := []fiber.Handler{guard, RequireRole(entity.RoleAdmin)}
	admin := func(prefix string) fiber.Router { return app.Group(prefix, adminOnly...) }

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	admin("/admin").Get("/", dashboardHandler.Index)

	// Libros
	bookHandler := NewBookHandler(deps.BookUC, deps.MaterialUC, log)
	books := admin("/libros")
	books.Get("/", bookHandler.Index)
	books.Get("/tabla", bookHandler.Table)
	books.Post("/", bookHandler.Create)
	books.Get("/:id/editar", bookHandler.Edit)
	books.Post("/:id", bookHandler.Update)
	books.Delete("/:id", bookHandler.Delete)

	// Materias primas
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials := admin("/materias-primas")
	materials.Get("/", materialHandler.Index)
	materials.Get("/tabla", materialHandler.Table)
	materials.Post("/", materialHandler.Create)
	materials.Get("/:id/editar", materialHandler.Edit)
	materials.Post("/:id/entrada", materialHandler.Entry)
	materials.Post("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Delete)

	// Puntos de venta
	pointHandler := NewPointOfSaleHandler(deps.PointUC)
	points := admin("/puntos-venta")
	points.Get("/", pointHandler.Index)
	points.Get("/tabla", pointHandler.Table)
	points.Post("/", pointHandler.Create)
	points.Get("/:id/editar", pointHandler.Edit)
	points.Post("/:id", pointHandler.Update)
	points.Delete("/:id", pointHandler.Delete)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC, deps.PointUC, log)
	users := admin("/usuarios")
	users.Get("/", userHandler.Index)
	users.Get("/tabla", userHandler.Table)
	users.Post("/", userHandler.Create)
	users.Get("/:id/editar", userHandler.Edit)
	users.Post("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Inventario por punto de venta
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.BookUC, deps.PointUC, log)
	inv := admin("/inventario")
	inv.Get("/", inventoryHandler.Index)
	inv.Get("/tabla", inventoryHandler.Table)
	inv.Post("/", inventoryHandler.Provision)
	inv.Post("/:id/ajustar", inventoryHandler.Adjust)
	inv.Post("/:id/vender", inventoryHandler.Sell)

	movementHandler := NewMovementHandler(deps.MovementsUC)
	movements := admin("/movimientos")
	movements.Get("/", movementHandler.Index)
	movements.Get("/tabla", movementHandler.Table)

	auditHandler := NewAuditHandler(deps.AuditUC)
	admin("/bitacora").Get("/", auditHandler.Index)

	// Reportes descargables
	reportHandler := NewReportHandler(deps.ReportUC)
	reportes := admin("/reportes")
	reportes.Get("/alertas.pdf", reportHandler.AlertsPDF)
	reportes.Get("/inventario.xlsx", reportHandler.InventoryXLSX)

	// Vendedor
	sellerHandler := NewSellerHandler(deps.SellerUC, deps.StockUC)
	seller := app.Group("/vendedor", guard, RequireRole(entity.RoleVendedor))
	seller.Get("/", sellerHandler.Index)
	seller.Get("/tabla", sellerHandler.Table)
	seller.Post("/:id/vender", sellerHandler.Sell)
}
