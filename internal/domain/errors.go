package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrOutOfStock        = errors.New("stock agotado")
	ErrNetwork           = errors.New("no se pudo conectar con el servidor")
	ErrBackend           = errors.New("el servidor rechazó la operación")
	ErrMalformedResponse = errors.New("respuesta inesperada del servidor")
)

// APIError respuesta no exitosa del backend. Detail es el mensaje que el backend
// envía en el campo "detail" (vacío si no envió ninguno).
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend %d", e.Status)
}

// Is permite errors.Is(err, ErrNotFound) para 404 y errors.Is(err, ErrBackend) para el resto.
// 401 y 403 además cumplen ErrUnauthorized y ErrForbidden.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == 404
	case ErrUnauthorized:
		return e.Status == 401
	case ErrForbidden:
		return e.Status == 403
	case ErrBackend:
		return e.Status != 404
	}
	return false
}
