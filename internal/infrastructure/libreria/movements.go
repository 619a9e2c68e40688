package libreria

import (
	"context"
	"net/http"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

const movimientosPath = "/movimientos/"

// ListMovements el backend los devuelve del más reciente al más antiguo; no se reordenan.
func (c *Client) ListMovements(ctx context.Context, q string) ([]entity.StockMovement, error) {
	items, err := getList[dto.MovementResponse](ctx, c, movimientosPath, searchQuery(q))
	if err != nil {
		return nil, err
	}
	return mapList(items, dto.MovementResponse.ToEntity), nil
}

func (c *Client) CreateMovement(ctx context.Context, req dto.CreateMovementRequest) (entity.StockMovement, error) {
	r, err := send[dto.MovementResponse](ctx, c, http.MethodPost, movimientosPath, req)
	if err != nil {
		return entity.StockMovement{}, err
	}
	return r.ToEntity(), nil
}
