package entity

import "time"

// MovementKind tipo de movimiento de inventario (enumeración fija del backend).
type MovementKind string

const (
	MovementVenta   MovementKind = "venta"
	MovementEntrada MovementKind = "entrada"
	MovementSalida  MovementKind = "salida"
	MovementAjuste  MovementKind = "ajuste"
)

var movementLabels = map[MovementKind]string{
	MovementVenta:   "Venta",
	MovementEntrada: "Entrada",
	MovementSalida:  "Salida",
	MovementAjuste:  "Ajuste",
}

// Valid indica si el tipo pertenece a la enumeración.
func (k MovementKind) Valid() bool {
	_, ok := movementLabels[k]
	return ok
}

// Label etiqueta para mostrar. Un tipo desconocido se muestra tal cual.
func (k MovementKind) Label() string {
	if l, ok := movementLabels[k]; ok {
		return l
	}
	if k == "" {
		return "—"
	}
	return string(k)
}

// StockMovement registro inmutable de un cambio de stock. La consola solo los crea (append-only).
type StockMovement struct {
	ID              int
	InventarioID    int
	Tipo            MovementKind
	Cantidad        int
	UsuarioID       *int
	FechaMovimiento time.Time
	Observaciones   string
}
