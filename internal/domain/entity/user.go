package entity

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User usuario del backend. Los vendedores pertenecen a un punto de venta.
type User struct {
	ID           int
	Nombre       string
	Email        string
	Rol          string
	PuntoVentaID *int
}
