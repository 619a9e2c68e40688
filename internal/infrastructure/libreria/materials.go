package libreria

import (
	"context"
	"net/http"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

const materiasPath = "/materias_primas/"

func (c *Client) ListMaterials(ctx context.Context, q string) ([]entity.RawMaterial, error) {
	items, err := getList[dto.MaterialResponse](ctx, c, materiasPath, searchQuery(q))
	if err != nil {
		return nil, err
	}
	return mapList(items, dto.MaterialResponse.ToEntity), nil
}

func (c *Client) GetMaterial(ctx context.Context, id int) (entity.RawMaterial, error) {
	r, err := send[dto.MaterialResponse](ctx, c, http.MethodGet, itemPath(materiasPath, id), nil)
	if err != nil {
		return entity.RawMaterial{}, err
	}
	return r.ToEntity(), nil
}

func (c *Client) CreateMaterial(ctx context.Context, req dto.CreateMaterialRequest) (entity.RawMaterial, error) {
	r, err := send[dto.MaterialResponse](ctx, c, http.MethodPost, materiasPath, req)
	if err != nil {
		return entity.RawMaterial{}, err
	}
	return r.ToEntity(), nil
}

func (c *Client) UpdateMaterial(ctx context.Context, id int, req dto.UpdateMaterialRequest) (entity.RawMaterial, error) {
	r, err := send[dto.MaterialResponse](ctx, c, http.MethodPatch, itemPath(materiasPath, id), req)
	if err != nil {
		return entity.RawMaterial{}, err
	}
	return r.ToEntity(), nil
}

func (c *Client) DeleteMaterial(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, itemPath(materiasPath, id), nil, nil, nil)
}

// RegisterMaterialEntry suma existencias a una materia prima (POST /materias_primas/{id}/entrada).
func (c *Client) RegisterMaterialEntry(ctx context.Context, id int, req dto.MaterialEntryRequest) (entity.RawMaterial, error) {
	r, err := send[dto.MaterialResponse](ctx, c, http.MethodPost, itemPath(materiasPath, id)+"/entrada", req)
	if err != nil {
		return entity.RawMaterial{}, err
	}
	return r.ToEntity(), nil
}
