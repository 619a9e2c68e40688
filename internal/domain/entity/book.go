package entity

import "github.com/shopspring/decimal"

// Book libro del catálogo. StockTotal lo calcula el backend (inventario global + puntos de venta).
type Book struct {
	ID         int
	Nombre     string
	Precio     *decimal.Decimal
	StockTotal int
}

// MaterialRequirement cantidad de una materia prima necesaria para producir un libro.
type MaterialRequirement struct {
	MateriaPrimaID int
	Cantidad       int
}
