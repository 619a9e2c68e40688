package views

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Sin valor para mostrar.
const dash = "—"

var locale = language.Spanish

// Labeler resuelve un id a su nombre para mostrar (ver infrastructure/cache.LabelIndex).
type Labeler interface {
	Label(id int) string
}

// Int formatea un entero con separador de miles en español.
func Int(n int) string {
	return message.NewPrinter(locale).Sprintf("%d", n)
}

// Money formatea un precio en pesos; sin precio devuelve "—".
func Money(d *decimal.Decimal) string {
	if d == nil {
		return dash
	}
	return MoneyValue(*d)
}

// MoneyValue como Money para valores no opcionales.
func MoneyValue(d decimal.Decimal) string {
	p := message.NewPrinter(locale)
	if d.Equal(d.Truncate(0)) {
		return p.Sprintf("$ %d", d.IntPart())
	}
	f, _ := d.Float64()
	return p.Sprintf("$ %v", number.Decimal(f, number.Scale(2)))
}

// OptionalInt formatea un entero opcional.
func OptionalInt(n *int) string {
	if n == nil {
		return dash
	}
	return Int(*n)
}

// DateTime fecha y hora local para tablas.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return dash
	}
	return t.Format("02/01/2006 15:04")
}

func orDash(s string) string {
	if s == "" {
		return dash
	}
	return s
}
