package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

// LowStockWarning existencias a partir de las cuales el vendedor ve el stock como "bajo".
const LowStockWarning = 5

// StockStatus clasificación de existencias para la vista del vendedor.
type StockStatus int

const (
	StockNormal StockStatus = iota
	StockBajo
	StockAgotado
)

// Classify clasifica un stock: agotado en 0 (o menos), bajo hasta LowStockWarning.
func Classify(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockAgotado
	case stock <= LowStockWarning:
		return StockBajo
	default:
		return StockNormal
	}
}

// TotalStock suma las existencias de todos los registros.
func TotalStock(records []entity.InventoryRecord) int {
	total := 0
	for _, r := range records {
		total += r.Stock
	}
	return total
}

// InventoryValue valoriza las existencias a precio de venta. Los registros sin precio no suman.
func InventoryValue(records []entity.InventoryRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.Precio == nil {
			continue
		}
		total = total.Add(r.Precio.Mul(decimal.NewFromInt(int64(r.Stock))))
	}
	return total
}
