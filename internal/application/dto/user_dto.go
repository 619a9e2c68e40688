package dto

import "github.com/jhoicas/libreria-consola/internal/domain/entity"

// CreateUserRequest body para POST /usuarios/. Un vendedor debe quedar asignado a un punto de venta.
type CreateUserRequest struct {
	Nombre       string `json:"nombre" validate:"required,min=1,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Rol          string `json:"rol" validate:"required,oneof=admin vendedor"`
	PuntoVentaID *int   `json:"punto_venta_id,omitempty" validate:"required_if=Rol vendedor,omitempty,gt=0"`
	Contrasena   string `json:"contrasena" validate:"required,min=6"`
}

// UpdateUserRequest body para PATCH /usuarios/{id}. La contraseña solo viaja si se cambia.
type UpdateUserRequest struct {
	Nombre       *string `json:"nombre,omitempty" validate:"omitempty,min=1,max=100"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Rol          *string `json:"rol,omitempty" validate:"omitempty,oneof=admin vendedor"`
	PuntoVentaID *int    `json:"punto_venta_id,omitempty" validate:"omitempty,gt=0"`
	Contrasena   *string `json:"contrasena,omitempty" validate:"omitempty,min=6"`
}

// UserResponse usuario tal como lo devuelve el backend (sin contraseña).
type UserResponse struct {
	ID           int     `json:"id_usuario" validate:"gt=0"`
	Nombre       string  `json:"nombre" validate:"required"`
	Email        *string `json:"email"`
	Rol          string  `json:"rol" validate:"required"`
	PuntoVentaID *int    `json:"punto_venta_id"`
}

func (r UserResponse) ToEntity() entity.User {
	u := entity.User{ID: r.ID, Nombre: r.Nombre, Rol: r.Rol, PuntoVentaID: r.PuntoVentaID}
	if r.Email != nil {
		u.Email = *r.Email
	}
	return u
}

// LoginRequest body para POST /usuarios/login.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Contrasena string `json:"contrasena" validate:"required"`
}

// LoginResponse respuesta del login. id_usuario, nombre y punto_venta_id son opcionales:
// versiones anteriores del backend solo devuelven message y role.
type LoginResponse struct {
	Message      string  `json:"message"`
	Role         string  `json:"role" validate:"required,oneof=admin vendedor"`
	IDUsuario    *int    `json:"id_usuario"`
	Nombre       *string `json:"nombre"`
	PuntoVentaID *int    `json:"punto_venta_id"`
}
