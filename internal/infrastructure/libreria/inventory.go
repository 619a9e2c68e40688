package libreria

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

const inventarioPVPath = "/inventario-pv/"

func (c *Client) ListInventory(ctx context.Context, q string) ([]entity.InventoryRecord, error) {
	items, err := getList[dto.InventoryRecordResponse](ctx, c, inventarioPVPath, searchQuery(q))
	if err != nil {
		return nil, err
	}
	return mapList(items, dto.InventoryRecordResponse.ToEntity), nil
}

// ListInventoryByPointOfSale GET /inventario-pv/por-pv/{id}.
func (c *Client) ListInventoryByPointOfSale(ctx context.Context, pointOfSaleID int) ([]entity.InventoryRecord, error) {
	path := fmt.Sprintf("%spor-pv/%d", inventarioPVPath, pointOfSaleID)
	items, err := getList[dto.InventoryRecordResponse](ctx, c, path, nil)
	if err != nil {
		return nil, err
	}
	return mapList(items, dto.InventoryRecordResponse.ToEntity), nil
}

func (c *Client) CreateInventoryRecord(ctx context.Context, req dto.CreateInventoryRecordRequest) (entity.InventoryRecord, error) {
	r, err := send[dto.InventoryRecordResponse](ctx, c, http.MethodPost, inventarioPVPath, req)
	if err != nil {
		return entity.InventoryRecord{}, err
	}
	return r.ToEntity(), nil
}

// AdjustStock POST /inventario-pv/{id}/ajustar con {"delta": d}. El backend calcula el stock resultante.
func (c *Client) AdjustStock(ctx context.Context, inventoryID int, req dto.AdjustStockRequest) (entity.InventoryRecord, error) {
	r, err := send[dto.InventoryRecordResponse](ctx, c, http.MethodPost, itemPath(inventarioPVPath, inventoryID)+"/ajustar", req)
	if err != nil {
		return entity.InventoryRecord{}, err
	}
	return r.ToEntity(), nil
}
