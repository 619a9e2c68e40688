package entity

// StockLevel es lo mínimo que necesita el escaneo de stock bajo: existencias actuales
// y, si está configurado, el umbral mínimo.
type StockLevel interface {
	CurrentStock() int
	MinimumStock() (int, bool)
	Label() string
}
