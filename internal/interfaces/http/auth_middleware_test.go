package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/libreria-consola/internal/application/analytics"
	"github.com/jhoicas/libreria-consola/internal/application/auth"
	"github.com/jhoicas/libreria-consola/internal/application/catalog"
	"github.com/jhoicas/libreria-consola/internal/application/inventory"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/application/reports"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/libreria-consola/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/libreria-consola/internal/infrastructure/xlsx"
	apphttp "github.com/jhoicas/libreria-consola/internal/interfaces/http"
	"github.com/jhoicas/libreria-consola/internal/interfaces/http/templates"
	pkgjwt "github.com/jhoicas/libreria-consola/pkg/jwt"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testIssuer     = "libreria-consola-test"
	testExpMin     = 60
	testCookieName = "consola_session"
)

// buildTestApp arma la consola completa sobre un backend en memoria.
func buildTestApp(t *testing.T, backend *fakeBackend) *fiber.App {
	t.Helper()
	log := logger.Nop()
	labels := cache.NewFactory(64)

	authUC := auth.NewAuthUseCase(backend, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, log)
	books := catalog.NewBookUseCase(backend, nil, log)
	materials := catalog.NewMaterialUseCase(backend, nil, log)
	points := catalog.NewPointOfSaleUseCase(backend, nil, log)
	users := catalog.NewUserUseCase(backend, backend, labels, nil, log)
	stock := inventory.NewStockUseCase(backend, backend, nil, log)
	alerts := inventory.NewAlertsUseCase(backend, backend)

	app := fiber.New(fiber.Config{
		Views:        templates.NewEngine(),
		ErrorHandler: apphttp.ErrorHandler(log),
	})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		BookUC:      books,
		MaterialUC:  materials,
		PointUC:     points,
		UserUC:      users,
		StockUC:     stock,
		SellerUC:    inventory.NewSellerUseCase(stock, backend),
		MovementsUC: inventory.NewMovementsUseCase(backend, backend, backend, labels, log),
		DashboardUC: analytics.NewDashboardUseCase(backend, log),
		AuditUC:     analytics.NewAuditUseCase(nil, backend, labels, log),
		ReportUC: reports.NewReportUseCase(alerts, stock, backend,
			infrapdf.NewMarotoPDFGenerator("Librería de prueba"), infraxlsx.NewInventoryExporter(), log),
		Cookie:  apphttp.CookieConfig{Name: testCookieName, ExpMinutes: testExpMin},
		AppName: "consola-test",
		Log:     log,
	})
	return app
}

// sessionCookie genera la cookie firmada de una sesión.
func sessionCookie(t *testing.T, sess entity.Session) *http.Cookie {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Subject{
		UserID:       sess.UserID,
		Nombre:       sess.Nombre,
		Role:         sess.Rol,
		PuntoVentaID: sess.PuntoVentaID,
	}, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return &http.Cookie{Name: testCookieName, Value: tok}
}

var (
	adminSession    = entity.Session{UserID: 1, Nombre: "Admin", Rol: entity.RoleAdmin}
	vendedorSession = entity.Session{UserID: 7, Nombre: "Ana", Rol: entity.RoleVendedor, PuntoVentaID: 2}
)

type reqOpt func(*http.Request)

func withSession(t *testing.T, sess entity.Session) reqOpt {
	c := sessionCookie(t, sess)
	return func(r *http.Request) { r.AddCookie(c) }
}

func asHTMX(r *http.Request) { r.Header.Set("HX-Request", "true") }

// doRequest lanza una petición y devuelve la respuesta. body != nil se envía como formulario.
func doRequest(t *testing.T, app *fiber.App, method, target string, body url.Values, opts ...reqOpt) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, o := range opts {
		o(req)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// ──────────────────────────────────────────────────────────────────────────────
// SessionGuard / RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionGuard_SinCookieRedirigeALogin(t *testing.T) {
	app := buildTestApp(t, &fakeBackend{})
	resp := doRequest(t, app, http.MethodGet, "/libros", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestSessionGuard_HTMXSinSesionRecibeHXRedirect(t *testing.T) {
	app := buildTestApp(t, &fakeBackend{})
	resp := doRequest(t, app, http.MethodGet, "/libros/tabla", nil, asHTMX)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("HX-Redirect"))
}

func TestSessionGuard_TokenInvalido(t *testing.T) {
	app := buildTestApp(t, &fakeBackend{})
	bad := func(r *http.Request) { r.AddCookie(&http.Cookie{Name: testCookieName, Value: "token.invalido.aqui"}) }
	resp := doRequest(t, app, http.MethodGet, "/admin", nil, bad)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestSessionGuard_TokenSinRol(t *testing.T) {
	app := buildTestApp(t, &fakeBackend{})
	resp := doRequest(t, app, http.MethodGet, "/admin", nil, withSession(t, entity.Session{UserID: 3}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode, "token sin rol se trata como sin sesión")
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestRequireRole_VendedorEnRutaAdminVuelveASuInicio(t *testing.T) {
	app := buildTestApp(t, &fakeBackend{})
	resp := doRequest(t, app, http.MethodGet, "/libros", nil, withSession(t, vendedorSession))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/vendedor", resp.Header.Get("Location"))
}

func TestRequireRole_AdminEnRutaVendedor(t *testing.T) {
	app := buildTestApp(t, &fakeBackend{})
	resp := doRequest(t, app, http.MethodGet, "/vendedor", nil, withSession(t, adminSession))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))
}

func TestRequireRole_HTMXProhibidoEsNotificacion(t *testing.T) {
	app := buildTestApp(t, &fakeBackend{})
	resp := doRequest(t, app, http.MethodDelete, "/libros/3", nil, withSession(t, vendedorSession), asHTMX)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode, "htmx solo aplica swaps en 2xx")
	assert.Contains(t, body, `id="notification"`)
	assert.Contains(t, body, listing.MsgForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequestLogger
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestLogger_PropagaRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(apphttp.LocalRequestID).(string))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, "abc-123", resp.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, "abc-123", readBody(t, resp))
}

func TestRequestLogger_GeneraRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Len(t, resp.Header.Get(fiber.HeaderXRequestID), 36, "uuid en formato canónico")
}
