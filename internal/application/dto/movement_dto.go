package dto

import (
	"time"

	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

// CreateMovementRequest body para POST /movimientos/.
type CreateMovementRequest struct {
	InventarioID    int        `json:"inventario_id" validate:"gt=0"`
	Tipo            string     `json:"tipo" validate:"required,oneof=entrada salida venta ajuste"`
	Cantidad        int        `json:"cantidad" validate:"gt=0"`
	UsuarioID       *int       `json:"usuario_id,omitempty" validate:"omitempty,gt=0"`
	FechaMovimiento *time.Time `json:"fecha_movimiento,omitempty"`
	Observaciones   *string    `json:"observaciones,omitempty" validate:"omitempty,max=255"`
}

// MovementResponse movimiento tal como lo devuelve el backend.
type MovementResponse struct {
	ID              int         `json:"id_mov_libro" validate:"gt=0"`
	InventarioID    int         `json:"inventario_id"`
	Tipo            string      `json:"tipo" validate:"required"`
	Cantidad        int         `json:"cantidad"`
	UsuarioID       *int        `json:"usuario_id"`
	FechaMovimiento BackendTime `json:"fecha_movimiento"`
	Observaciones   *string     `json:"observaciones"`
}

func (r MovementResponse) ToEntity() entity.StockMovement {
	m := entity.StockMovement{
		ID:              r.ID,
		InventarioID:    r.InventarioID,
		Tipo:            entity.MovementKind(r.Tipo),
		Cantidad:        r.Cantidad,
		UsuarioID:       r.UsuarioID,
		FechaMovimiento: r.FechaMovimiento.Time,
	}
	if r.Observaciones != nil {
		m.Observaciones = *r.Observaciones
	}
	return m
}
