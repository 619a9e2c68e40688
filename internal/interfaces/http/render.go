package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/domain"
	"github.com/jhoicas/libreria-consola/internal/interfaces/http/templates"
)

const layoutName = templates.Layout

// page renderiza una página completa con el layout; agrega la sesión y el título.
func page(c *fiber.Ctx, name, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	if sess, ok := GetSession(c); ok {
		data["Session"] = sess
	}
	return c.Render(name, data, layoutName)
}

// fragment renderiza un bloque sin layout (respuestas htmx).
func fragment(c *fiber.Ctx, name string, data any) error {
	return c.Render(name, data)
}

// renderNotification responde solo con el aviso (swap out-of-band en #notification).
// Siempre con 200: htmx solo aplica swaps en respuestas 2xx.
func renderNotification(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusOK).Render("partials/notification", dto.Notification{Level: dto.NotifyError, Message: msg})
}

// notifyError aviso de error para el usuario.
func notifyError(c *fiber.Ctx, err error) error {
	return renderNotification(c, listing.UserMessage(err))
}

// form adapta c.FormValue a dto.FormValues.
func form(c *fiber.Ctx) dto.FormValues {
	return func(key string) string { return c.FormValue(key) }
}

// paramID id de la ruta; debe ser un entero positivo.
func paramID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, &dto.FieldError{Field: "id", Message: "Identificador inválido."}
	}
	return id, nil
}

// queryPV punto de venta elegido en el selector (query o formulario); 0 = todos.
func queryPV(c *fiber.Ctx) int {
	raw := c.Query("pv")
	if raw == "" {
		raw = c.FormValue("pv")
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// statusFor código HTTP para respuestas que no son avisos htmx (login, descargas).
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	}
	// Un rechazo 4xx del backend se propaga tal cual; 5xx queda como falla de gateway.
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return apiErr.Status
	}
	switch {
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrBackend), errors.Is(err, domain.ErrMalformedResponse):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// listQuery filtro de texto de los listados (?q=).
func listQuery(c *fiber.Ctx) dto.ListQuery {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return dto.ListQuery{}
	}
	q.Q = strings.TrimSpace(q.Q)
	return q
}

// wantsJSON clientes que piden JSON explícitamente (scripts, monitoreo); htmx y navegadores reciben HTML.
func wantsJSON(c *fiber.Ctx) bool {
	return !isHTMX(c) && c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

// errorCode código estable del cuerpo JSON de error.
func errorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return "VALIDATION"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusBadGateway:
		return "BACKEND_UNAVAILABLE"
	default:
		return "INTERNAL"
	}
}

// maxInt límite superior para campos enteros sin tope propio.
const maxInt = int(^uint(0) >> 1)
