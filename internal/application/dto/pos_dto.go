package dto

import "github.com/jhoicas/libreria-consola/internal/domain/entity"

// CreatePointOfSaleRequest body para POST /puntos-venta/.
type CreatePointOfSaleRequest struct {
	Nombre    string `json:"nombre" validate:"required,max=100"`
	Ubicacion string `json:"ubicacion" validate:"max=200"`
	Tipo      string `json:"tipo" validate:"required,oneof=tienda metro online"`
}

// UpdatePointOfSaleRequest body para PATCH /puntos-venta/{id}.
type UpdatePointOfSaleRequest struct {
	Nombre    *string `json:"nombre,omitempty" validate:"omitempty,min=1,max=100"`
	Ubicacion *string `json:"ubicacion,omitempty" validate:"omitempty,max=200"`
	Tipo      *string `json:"tipo,omitempty" validate:"omitempty,oneof=tienda metro online"`
}

// PointOfSaleResponse punto de venta tal como lo devuelve el backend.
type PointOfSaleResponse struct {
	ID        int    `json:"id_punto_venta" validate:"gt=0"`
	Nombre    string `json:"nombre" validate:"required"`
	Ubicacion string `json:"ubicacion"`
	Tipo      string `json:"tipo"`
}

func (r PointOfSaleResponse) ToEntity() entity.PointOfSale {
	return entity.PointOfSale{ID: r.ID, Nombre: r.Nombre, Ubicacion: r.Ubicacion, Tipo: r.Tipo}
}
