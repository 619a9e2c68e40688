package entity

// Session contexto de quien opera la consola. Se resuelve una sola vez al iniciar sesión
// y se pasa explícitamente a cada caso de uso; no es una frontera de seguridad
// (el backend autoriza por su cuenta).
type Session struct {
	UserID       int
	Nombre       string
	Rol          string
	PuntoVentaID int // 0 = sin punto de venta asignado
}

// HasRole indica si la sesión tiene alguno de los roles dados.
func (s Session) HasRole(roles ...string) bool {
	for _, r := range roles {
		if s.Rol == r {
			return true
		}
	}
	return false
}

// HasPointOfSale indica si la sesión está atada a un punto de venta.
func (s Session) HasPointOfSale() bool { return s.PuntoVentaID > 0 }
