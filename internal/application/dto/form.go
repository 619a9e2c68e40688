package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormValues fuente de valores de un formulario (c.FormValue en Fiber, flags en la CLI).
type FormValues func(key string) string

// Text devuelve el valor recortado.
func (f FormValues) Text(key string) string {
	return strings.TrimSpace(f(key))
}

// OptionalText devuelve nil si el campo viene vacío.
func (f FormValues) OptionalText(key string) *string {
	s := f.Text(key)
	if s == "" {
		return nil
	}
	return &s
}

// Int convierte un campo obligatorio a entero dentro de [min, max].
// Entradas no numéricas o fuera de rango se rechazan con un mensaje para el usuario.
func (f FormValues) Int(key, label string, min, max int) (int, error) {
	raw := f.Text(key)
	if raw == "" {
		return 0, &FieldError{Field: key, Message: fmt.Sprintf("Debes ingresar %s.", label)}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: key, Message: fmt.Sprintf("%s debe ser un número entero.", capitalize(label))}
	}
	if n < min || n > max {
		return 0, &FieldError{Field: key, Message: rangeMessage(label, min, max)}
	}
	return n, nil
}

// OptionalInt como Int pero devuelve nil si el campo viene vacío.
func (f FormValues) OptionalInt(key, label string, min, max int) (*int, error) {
	if f.Text(key) == "" {
		return nil, nil
	}
	n, err := f.Int(key, label, min, max)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Decimal convierte un campo monetario obligatorio; no admite negativos.
func (f FormValues) Decimal(key, label string) (decimal.Decimal, error) {
	raw := f.Text(key)
	if raw == "" {
		return decimal.Zero, &FieldError{Field: key, Message: fmt.Sprintf("Debes ingresar %s.", label)}
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return decimal.Zero, &FieldError{Field: key, Message: fmt.Sprintf("%s debe ser un número válido.", capitalize(label))}
	}
	if d.IsNegative() {
		return decimal.Zero, &FieldError{Field: key, Message: fmt.Sprintf("%s no puede ser negativo.", capitalize(label))}
	}
	return d, nil
}

// OptionalDecimal como Decimal pero devuelve nil si el campo viene vacío.
func (f FormValues) OptionalDecimal(key, label string) (*decimal.Decimal, error) {
	if f.Text(key) == "" {
		return nil, nil
	}
	d, err := f.Decimal(key, label)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func rangeMessage(label string, min, max int) string {
	const unbounded = int(^uint(0) >> 1)
	switch {
	case max == unbounded && min == 1:
		return fmt.Sprintf("%s debe ser un número positivo.", capitalize(label))
	case max == unbounded:
		return fmt.Sprintf("%s debe ser mayor o igual que %d.", capitalize(label), min)
	default:
		return fmt.Sprintf("%s debe estar entre %d y %d.", capitalize(label), min, max)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
