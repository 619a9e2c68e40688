package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/libreria-consola/internal/application/auth"
	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/domain"
)

// msgBadCredentials se muestra cuando el backend rechaza el login sin detalle.
const msgBadCredentials = "Credenciales inválidas."

// AuthHandler inicio y cierre de sesión.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie CookieConfig
}

// CookieConfig cookie de sesión.
type CookieConfig struct {
	Name       string
	ExpMinutes int
	Secure     bool
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

// LoginForm GET /login. Con sesión válida va directo al inicio de su rol.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if token := c.Cookies(h.cookie.Name); token != "" {
		if sess, err := h.uc.Resolve(token); err == nil {
			return c.Redirect(auth.HomeFor(sess), fiber.StatusSeeOther)
		}
	}
	return page(c, "login", "Iniciar sesión", nil)
}

// Login POST /login. La sesión se resuelve una sola vez y viaja firmada en la cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	f := form(c)
	in := dto.LoginRequest{Email: f.Text("email"), Contrasena: f("contrasena")}

	sess, token, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		msg := listing.UserMessage(err)
		if errors.Is(err, domain.ErrUnauthorized) && !hasDetail(err) {
			msg = msgBadCredentials
		}
		return page(c.Status(statusFor(err)), "login", "Iniciar sesión", fiber.Map{"Error": msg, "Email": in.Email})
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(h.cookie.ExpMinutes) * time.Minute),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect(auth.HomeFor(sess), fiber.StatusSeeOther)
}

// Logout GET /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func hasDetail(err error) bool {
	var apiErr *domain.APIError
	return errors.As(err, &apiErr) && apiErr.Detail != ""
}
