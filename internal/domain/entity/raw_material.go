package entity

// RawMaterial materia prima usada para producir libros (papel, tinta, tapas…).
type RawMaterial struct {
	ID          int
	Nombre      string
	Unidad      string
	StockActual int
	StockMinimo int
}

func (m RawMaterial) CurrentStock() int { return m.StockActual }

func (m RawMaterial) MinimumStock() (int, bool) { return m.StockMinimo, true }

func (m RawMaterial) Label() string { return m.Nombre }
