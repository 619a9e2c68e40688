package entity

import "github.com/shopspring/decimal"

// InventoryRecord existencias de un libro en un punto de venta (tabla inventario_pv del backend).
// Libro y PuntoVenta son los nombres que el backend adjunta para mostrar.
type InventoryRecord struct {
	ID           int
	LibroID      int
	Libro        string
	PuntoVentaID int
	PuntoVenta   string
	Stock        int
	StockMinimo  *int             // nil = sin umbral configurado
	Precio       *decimal.Decimal // precio unitario del libro, si el backend lo envía
}

func (r InventoryRecord) CurrentStock() int { return r.Stock }

func (r InventoryRecord) MinimumStock() (int, bool) {
	if r.StockMinimo == nil {
		return 0, false
	}
	return *r.StockMinimo, true
}

func (r InventoryRecord) Label() string { return r.Libro }
