package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/libreria-consola/internal/application/auth"
	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/domain"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// Locals keys.
const (
	LocalSession   = "session"
	LocalRequestID = "request_id"
)

// sessionResolver lo implementa *auth.AuthUseCase.
type sessionResolver interface {
	Resolve(token string) (entity.Session, error)
}

var _ sessionResolver = (*auth.AuthUseCase)(nil)

// SessionGuard valida la cookie de sesión y deja la sesión en c.Locals.
// Sin sesión válida: una petición htmx recibe 401 con HX-Redirect; una navegación normal
// se redirige a /login.
func SessionGuard(resolver sessionResolver, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return unauthorized(c)
		}
		sess, err := resolver.Resolve(token)
		if err != nil || sess.Rol == "" {
			return unauthorized(c)
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	if isHTMX(c) {
		c.Set("HX-Redirect", "/login")
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// RequireRole autoriza por rol. Debe usarse DESPUÉS de SessionGuard. La consola solo
// decide qué vistas mostrar; el backend autoriza por su cuenta.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := GetSession(c)
		if !ok {
			return unauthorized(c)
		}
		if !sess.HasRole(roles...) {
			if isHTMX(c) {
				return renderNotification(c, listing.MsgForbidden)
			}
			return c.Redirect(auth.HomeFor(sess), fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después de SessionGuard).
func GetSession(c *fiber.Ctx) (entity.Session, bool) {
	sess, ok := c.Locals(LocalSession).(entity.Session)
	return sess, ok
}

// mustSession como GetSession, para handlers montados detrás del guard.
func mustSession(c *fiber.Ctx) entity.Session {
	sess, _ := GetSession(c)
	return sess
}

func isHTMX(c *fiber.Ctx) bool { return c.Get("HX-Request") == "true" }

// RequestLogger asigna un request id (X-Request-ID entrante o uno nuevo) y registra
// cada petición al terminar: 5xx en error, 4xx en warn, el resto en info.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Locals(LocalRequestID, requestID)
		c.Set(fiber.HeaderXRequestID, requestID)

		chainErr := c.Next()

		status := c.Response().StatusCode()
		if chainErr != nil {
			var fe *fiber.Error
			if errors.As(chainErr, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error().Err(chainErr)
		case status >= 400:
			ev = log.Warn()
		}
		ev.Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Bool("htmx", isHTMX(c)).
			Msg("request")
		return chainErr
	}
}

// ErrorHandler último recurso para errores no convertidos en notificación.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := listing.MsgUnexpected
		var fe *fiber.Error
		switch {
		case errors.As(err, &fe):
			code = fe.Code
			msg = fe.Message
		case errors.Is(err, domain.ErrNotFound):
			code = fiber.StatusNotFound
			msg = listing.UserMessage(err)
		}
		if code >= 500 {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		}
		if isHTMX(c) {
			return renderNotification(c, msg)
		}
		if wantsJSON(c) {
			return c.Status(code).JSON(dto.ErrorResponse{Code: errorCode(code), Message: msg})
		}
		home := "/login"
		if sess, ok := GetSession(c); ok {
			home = auth.HomeFor(sess)
		}
		return c.Status(code).Render("error", fiber.Map{"Title": "Error", "Message": msg, "Home": home}, layoutName)
	}
}
