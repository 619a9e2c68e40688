// consola sirve la consola web de administración de la librería (Fiber + htmx) frente a
// la API REST del backend.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/jhoicas/libreria-consola/internal/application/analytics"
	"github.com/jhoicas/libreria-consola/internal/application/auth"
	"github.com/jhoicas/libreria-consola/internal/application/catalog"
	"github.com/jhoicas/libreria-consola/internal/application/inventory"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/application/reports"
	"github.com/jhoicas/libreria-consola/internal/infrastructure/cache"
	"github.com/jhoicas/libreria-consola/internal/infrastructure/libreria"
	infrapdf "github.com/jhoicas/libreria-consola/internal/infrastructure/pdf"
	"github.com/jhoicas/libreria-consola/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/libreria-consola/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/libreria-consola/internal/interfaces/http"
	"github.com/jhoicas/libreria-consola/internal/interfaces/http/templates"
	"github.com/jhoicas/libreria-consola/pkg/config"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando consola")

	if cfg.Session.Secret == "" {
		if cfg.App.Env != "development" {
			log.Fatal().Msg("SESSION_SECRET es obligatorio fuera de development")
		}
		// Las sesiones no sobreviven a un reinicio.
		cfg.Session.Secret = uuid.NewString()
		log.Warn().Msg("SESSION_SECRET vacío: se usa un secreto aleatorio")
	}

	backend := libreria.New(cfg.Backend.BaseURL, cfg.Backend.Timeout(), libreria.WithLogger(log))
	labels := cache.NewFactory(cfg.Cache.LabelSize)

	// Bitácora opcional: sin base de datos la consola funciona igual.
	ctx := context.Background()
	var (
		auditRecorder ports.AuditRecorder
		auditLog      ports.AuditLog
	)
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, postgres.NewTxRunner(pool)); err != nil {
			log.Fatal().Err(err).Msg("esquema de la bitácora")
		}
		repo := postgres.NewAuditRepository(pool)
		auditRecorder, auditLog = repo, repo
		log.Info().Msg("bitácora de acciones habilitada")
	} else {
		log.Info().Msg("sin base de datos: bitácora deshabilitada")
	}

	authUC := auth.NewAuthUseCase(backend, auth.JWTConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.Expiration,
		Issuer:     cfg.Session.Issuer,
	}, log)
	bookUC := catalog.NewBookUseCase(backend, auditRecorder, log)
	materialUC := catalog.NewMaterialUseCase(backend, auditRecorder, log)
	pointUC := catalog.NewPointOfSaleUseCase(backend, auditRecorder, log)
	userUC := catalog.NewUserUseCase(backend, backend, labels, auditRecorder, log)
	stockUC := inventory.NewStockUseCase(backend, backend, auditRecorder, log)
	alertsUC := inventory.NewAlertsUseCase(backend, backend)

	reportUC := reports.NewReportUseCase(alertsUC, stockUC, backend,
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name), infraxlsx.NewInventoryExporter(), log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        templates.NewEngine(),
		ErrorHandler: httpRouter.ErrorHandler(log),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		BookUC:      bookUC,
		MaterialUC:  materialUC,
		PointUC:     pointUC,
		UserUC:      userUC,
		StockUC:     stockUC,
		SellerUC:    inventory.NewSellerUseCase(stockUC, backend),
		MovementsUC: inventory.NewMovementsUseCase(backend, backend, backend, labels, log),
		DashboardUC: analytics.NewDashboardUseCase(backend, log),
		AuditUC:     analytics.NewAuditUseCase(auditLog, backend, labels, log),
		ReportUC:    reportUC,
		Cookie: httpRouter.CookieConfig{
			Name:       cfg.Session.CookieName,
			ExpMinutes: cfg.Session.Expiration,
			Secure:     cfg.App.Env == "production",
		},
		AppName: cfg.App.Name,
		Log:     log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
