package listing

import (
	"errors"
	"fmt"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/domain"
)

// Mensajes genéricos cuando el backend no envía un detalle.
const (
	MsgConnection = "No se pudo conectar con el servidor. Verifica tu conexión e inténtalo de nuevo."
	MsgMalformed  = "El servidor devolvió una respuesta inesperada."
	MsgNotFound   = "El recurso solicitado no existe."
	MsgOutOfStock = "Stock agotado. No se puede realizar la venta."
	MsgForbidden  = "No tienes permiso para realizar esta acción."
	MsgSession    = "Tu sesión expiró. Inicia sesión de nuevo."
	MsgUnexpected = "Ocurrió un error inesperado."
)

// UserMessage traduce un error a un texto para el usuario. El detalle del backend se
// muestra tal cual; si no hay detalle se usa un mensaje genérico por tipo de fallo.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ex *explainedError
	if errors.As(err, &ex) {
		return ex.msg
	}
	var fe *dto.FieldError
	if errors.As(err, &fe) {
		return fe.Message
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Detail != "":
			return apiErr.Detail
		case apiErr.Status == 404:
			return MsgNotFound
		default:
			return fmt.Sprintf("Error del servidor (código %d).", apiErr.Status)
		}
	}
	switch {
	case errors.Is(err, domain.ErrNetwork):
		return MsgConnection
	case errors.Is(err, domain.ErrMalformedResponse):
		return MsgMalformed
	case errors.Is(err, domain.ErrOutOfStock):
		return MsgOutOfStock
	case errors.Is(err, domain.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, domain.ErrForbidden):
		return MsgForbidden
	case errors.Is(err, domain.ErrUnauthorized):
		return MsgSession
	default:
		return MsgUnexpected
	}
}

type explainedError struct {
	msg string
	err error
}

func (e *explainedError) Error() string { return e.msg }
func (e *explainedError) Unwrap() error { return e.err }

// Explain reemplaza el mensaje que verá el usuario sin perder la cadena de errores.
func Explain(err error, msg string) error {
	return &explainedError{msg: msg, err: err}
}
