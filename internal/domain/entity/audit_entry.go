package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuditEntry acción exitosa ejecutada desde la consola contra el backend.
type AuditEntry struct {
	ID         uuid.UUID
	UserID     int
	Action     string // crear, actualizar, eliminar, ajustar, vender, entrada
	Resource   string // libros, materias_primas, puntos-venta, usuarios, inventario-pv, movimientos
	ResourceID int
	Delta      *int
	Amount     *decimal.Decimal
	Detail     string
	CreatedAt  time.Time
}
