package inventory

import "github.com/jhoicas/libreria-consola/internal/domain/entity"

// IsLow indica si el nivel está por debajo de su mínimo configurado.
// Igual al mínimo no es alerta; sin mínimo configurado nunca alerta.
func IsLow(level entity.StockLevel) bool {
	minimo, ok := level.MinimumStock()
	if !ok {
		return false
	}
	return level.CurrentStock() < minimo
}

// LowStock devuelve los elementos con stock actual < mínimo, en el mismo orden de entrada.
// Se usa igual para inventario de libros y para materias primas.
func LowStock[T entity.StockLevel](items []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if IsLow(it) {
			out = append(out, it)
		}
	}
	return out
}
