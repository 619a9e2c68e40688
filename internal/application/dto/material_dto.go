package dto

import "github.com/jhoicas/libreria-consola/internal/domain/entity"

// CreateMaterialRequest body para POST /materias_primas/.
type CreateMaterialRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=150"`
	Unidad      string `json:"unidad" validate:"required,max=30"`
	StockMinimo int    `json:"stock_minimo" validate:"gte=0"`
	StockActual int    `json:"stock_actual" validate:"gte=0"`
}

// UpdateMaterialRequest body para PATCH /materias_primas/{id}.
type UpdateMaterialRequest struct {
	Nombre      *string `json:"nombre,omitempty" validate:"omitempty,min=1,max=150"`
	Unidad      *string `json:"unidad,omitempty" validate:"omitempty,min=1,max=30"`
	StockMinimo *int    `json:"stock_minimo,omitempty" validate:"omitempty,gte=0"`
}

// MaterialEntryRequest body para POST /materias_primas/{id}/entrada.
type MaterialEntryRequest struct {
	Cantidad      int     `json:"cantidad" validate:"gt=0"`
	UsuarioID     int     `json:"usuario_id" validate:"gt=0"`
	Observaciones *string `json:"observaciones,omitempty" validate:"omitempty,max=255"`
}

// MaterialResponse materia prima tal como la devuelve el backend.
type MaterialResponse struct {
	ID          int    `json:"id_mp" validate:"gt=0"`
	Nombre      string `json:"nombre" validate:"required"`
	Unidad      string `json:"unidad"`
	StockActual int    `json:"stock_actual"`
	StockMinimo int    `json:"stock_minimo"`
}

func (r MaterialResponse) ToEntity() entity.RawMaterial {
	return entity.RawMaterial{
		ID:          r.ID,
		Nombre:      r.Nombre,
		Unidad:      r.Unidad,
		StockActual: r.StockActual,
		StockMinimo: r.StockMinimo,
	}
}
