package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

// MaterialRequirementRequest materia prima y cantidad necesaria por libro.
type MaterialRequirementRequest struct {
	MateriaPrimaID int `json:"id_mp" validate:"gt=0"`
	Cantidad       int `json:"cantidad" validate:"gt=0"`
}

// CreateBookRequest body para POST /libros/. Un libro sin materias primas se rechaza
// antes de enviar nada al backend.
type CreateBookRequest struct {
	Nombre          string                       `json:"nombre" validate:"required,min=1,max=150"`
	Categoria       *string                      `json:"categoria,omitempty"`
	Descripcion     *string                      `json:"descripcion,omitempty"`
	Precio          *decimal.Decimal             `json:"precio,omitempty" validate:"omitempty,gte=0"`
	PaginasPorLibro int                          `json:"paginas_por_libro" validate:"gte=1"`
	CantidadLibros  int                          `json:"cantidad_libros" validate:"gte=0"`
	Materias        []MaterialRequirementRequest `json:"materias" validate:"required,min=1,dive"`
}

// UpdateBookRequest body para PATCH /libros/{id}; solo viajan los campos informados.
type UpdateBookRequest struct {
	Nombre *string          `json:"nombre,omitempty" validate:"omitempty,min=1,max=150"`
	Precio *decimal.Decimal `json:"precio,omitempty" validate:"omitempty,gte=0"`
}

// BookResponse libro tal como lo devuelve el backend.
type BookResponse struct {
	ID         int              `json:"id_libro" validate:"gt=0"`
	Nombre     string           `json:"nombre" validate:"required"`
	Precio     *decimal.Decimal `json:"precio"`
	StockTotal int              `json:"stock_total"`
}

// ToEntity convierte la respuesta en entidad de dominio.
func (r BookResponse) ToEntity() entity.Book {
	return entity.Book{ID: r.ID, Nombre: r.Nombre, Precio: r.Precio, StockTotal: r.StockTotal}
}
