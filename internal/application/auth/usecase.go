package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/domain"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/pkg/jwt"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// JWTConfig configuración para firmar la cookie de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase inicio de sesión contra el backend y resolución de la sesión de consola.
// La contraseña la verifica el backend; aquí solo se firma el resultado.
type AuthUseCase struct {
	users  ports.UserGateway
	jwtCfg JWTConfig
	log    *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users ports.UserGateway, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{users: users, jwtCfg: jwtCfg, log: log.Component("auth")}
}

// Login valida credenciales, resuelve la sesión una sola vez y devuelve el token firmado.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (entity.Session, string, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := dto.Validate(in); err != nil {
		return entity.Session{}, "", err
	}
	resp, err := uc.users.Login(ctx, in)
	if err != nil {
		return entity.Session{}, "", err
	}

	sess := entity.Session{Rol: resp.Role, Nombre: in.Email}
	if resp.IDUsuario != nil {
		sess.UserID = *resp.IDUsuario
	}
	if resp.Nombre != nil && *resp.Nombre != "" {
		sess.Nombre = *resp.Nombre
	}
	if resp.PuntoVentaID != nil {
		sess.PuntoVentaID = *resp.PuntoVentaID
	}
	if sess.UserID == 0 {
		uc.completeFromDirectory(ctx, in.Email, &sess)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Subject{
		UserID:       sess.UserID,
		Nombre:       sess.Nombre,
		Role:         sess.Rol,
		PuntoVentaID: sess.PuntoVentaID,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return entity.Session{}, "", fmt.Errorf("auth: firmar sesión: %w", err)
	}
	uc.log.Info().Int("user_id", sess.UserID).Str("rol", sess.Rol).Msg("inicio de sesión")
	return sess, token, nil
}

// completeFromDirectory versiones anteriores del login solo devuelven el rol; el id,
// el nombre y el punto de venta se buscan en /usuarios/?q=email.
func (uc *AuthUseCase) completeFromDirectory(ctx context.Context, email string, sess *entity.Session) {
	users, err := uc.users.ListUsers(ctx, email)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo completar la sesión desde /usuarios/")
		return
	}
	for _, u := range users {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		sess.UserID = u.ID
		sess.Nombre = u.Nombre
		if sess.PuntoVentaID == 0 && u.PuntoVentaID != nil {
			sess.PuntoVentaID = *u.PuntoVentaID
		}
		return
	}
}

// Resolve valida el token de la cookie y devuelve la sesión.
func (uc *AuthUseCase) Resolve(token string) (entity.Session, error) {
	sub, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return entity.Session{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return entity.Session{
		UserID:       sub.UserID,
		Nombre:       sub.Nombre,
		Rol:          sub.Role,
		PuntoVentaID: sub.PuntoVentaID,
	}, nil
}

// HomeFor ruta de inicio según el rol.
func HomeFor(sess entity.Session) string {
	if sess.Rol == entity.RoleAdmin {
		return "/admin"
	}
	return "/vendedor"
}
