package entity

// Tipos de punto de venta aceptados por el backend.
const (
	PointOfSaleTienda = "tienda"
	PointOfSaleMetro  = "metro"
	PointOfSaleOnline = "online"
)

// PointOfSale ubicación física o lógica con su propio subconjunto de inventario.
type PointOfSale struct {
	ID        int
	Nombre    string
	Ubicacion string
	Tipo      string
}
