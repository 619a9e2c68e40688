package libreria

import (
	"context"
	"net/http"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

const puntosVentaPath = "/puntos-venta/"

func (c *Client) ListPointsOfSale(ctx context.Context, q string) ([]entity.PointOfSale, error) {
	items, err := getList[dto.PointOfSaleResponse](ctx, c, puntosVentaPath, searchQuery(q))
	if err != nil {
		return nil, err
	}
	return mapList(items, dto.PointOfSaleResponse.ToEntity), nil
}

func (c *Client) GetPointOfSale(ctx context.Context, id int) (entity.PointOfSale, error) {
	r, err := send[dto.PointOfSaleResponse](ctx, c, http.MethodGet, itemPath(puntosVentaPath, id), nil)
	if err != nil {
		return entity.PointOfSale{}, err
	}
	return r.ToEntity(), nil
}

func (c *Client) CreatePointOfSale(ctx context.Context, req dto.CreatePointOfSaleRequest) (entity.PointOfSale, error) {
	r, err := send[dto.PointOfSaleResponse](ctx, c, http.MethodPost, puntosVentaPath, req)
	if err != nil {
		return entity.PointOfSale{}, err
	}
	return r.ToEntity(), nil
}

func (c *Client) UpdatePointOfSale(ctx context.Context, id int, req dto.UpdatePointOfSaleRequest) (entity.PointOfSale, error) {
	r, err := send[dto.PointOfSaleResponse](ctx, c, http.MethodPatch, itemPath(puntosVentaPath, id), req)
	if err != nil {
		return entity.PointOfSale{}, err
	}
	return r.ToEntity(), nil
}

func (c *Client) DeletePointOfSale(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, itemPath(puntosVentaPath, id), nil, nil, nil)
}
