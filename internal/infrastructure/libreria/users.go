package libreria

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/domain"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

const (
	usuariosPath = "/usuarios/"
	loginPath    = "/usuarios/login"
)

func (c *Client) ListUsers(ctx context.Context, q string) ([]entity.User, error) {
	items, err := getList[dto.UserResponse](ctx, c, usuariosPath, searchQuery(q))
	if err != nil {
		return nil, err
	}
	return mapList(items, dto.UserResponse.ToEntity), nil
}

func (c *Client) GetUser(ctx context.Context, id int) (entity.User, error) {
	r, err := send[dto.UserResponse](ctx, c, http.MethodGet, itemPath(usuariosPath, id), nil)
	if err != nil {
		return entity.User{}, err
	}
	return r.ToEntity(), nil
}

func (c *Client) CreateUser(ctx context.Context, req dto.CreateUserRequest) (entity.User, error) {
	r, err := send[dto.UserResponse](ctx, c, http.MethodPost, usuariosPath, req)
	if err != nil {
		return entity.User{}, err
	}
	return r.ToEntity(), nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, req dto.UpdateUserRequest) (entity.User, error) {
	r, err := send[dto.UserResponse](ctx, c, http.MethodPatch, itemPath(usuariosPath, id), req)
	if err != nil {
		return entity.User{}, err
	}
	return r.ToEntity(), nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, itemPath(usuariosPath, id), nil, nil, nil)
}

// Login valida credenciales contra POST /usuarios/login. El backend responde 400
// con "Credenciales inválidas"; se traduce a domain.ErrUnauthorized conservando el detalle.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	r, err := send[dto.LoginResponse](ctx, c, http.MethodPost, loginPath, req)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnauthorized) {
			return dto.LoginResponse{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
		}
		return dto.LoginResponse{}, err
	}
	return r, nil
}
