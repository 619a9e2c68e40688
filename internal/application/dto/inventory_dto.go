package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

// CreateInventoryRecordRequest body para POST /inventario-pv/. El stock mínimo es obligatorio.
type CreateInventoryRecordRequest struct {
	LibroID      int  `json:"id_libro" validate:"gt=0"`
	PuntoVentaID int  `json:"id_punto_venta" validate:"gt=0"`
	Stock        int  `json:"stock" validate:"gte=0"`
	StockMinimo  *int `json:"stock_minimo" validate:"required,gte=0"`
}

// AdjustStockRequest body para POST /inventario-pv/{id}/ajustar. Solo el delta:
// el stock resultante lo calcula el backend.
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"ne=0"`
}

// InventoryRecordResponse registro de inventario por punto de venta.
type InventoryRecordResponse struct {
	ID           int              `json:"id_inventario" validate:"gt=0"`
	LibroID      int              `json:"id_libro"`
	Libro        string           `json:"libro"`
	PuntoVentaID int              `json:"id_punto_venta"`
	PuntoVenta   string           `json:"punto_venta"`
	Stock        int              `json:"stock" validate:"gte=0"`
	StockMinimo  *int             `json:"stock_minimo"`
	Precio       *decimal.Decimal `json:"precio"`
}

func (r InventoryRecordResponse) ToEntity() entity.InventoryRecord {
	return entity.InventoryRecord{
		ID:           r.ID,
		LibroID:      r.LibroID,
		Libro:        r.Libro,
		PuntoVentaID: r.PuntoVentaID,
		PuntoVenta:   r.PuntoVenta,
		Stock:        r.Stock,
		StockMinimo:  r.StockMinimo,
		Precio:       r.Precio,
	}
}
