package inventory_test

import (
	"context"
	"sync"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/domain"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

// fakeBackend inventario y materias primas en memoria; registra cada llamada.
type fakeBackend struct {
	mu        sync.Mutex
	records   []entity.InventoryRecord
	materials []entity.RawMaterial
	pos       map[int]entity.PointOfSale

	adjustReqs   []dto.AdjustStockRequest
	movementReqs []dto.CreateMovementRequest
	createReqs   []dto.CreateInventoryRecordRequest
	listCalls    int

	adjustErr error
	listErr   error
	matErr    error
}

func (f *fakeBackend) ListInventory(_ context.Context, _ string) ([]entity.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]entity.InventoryRecord(nil), f.records...), nil
}

func (f *fakeBackend) ListInventoryByPointOfSale(_ context.Context, pv int) ([]entity.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []entity.InventoryRecord{}
	for _, r := range f.records {
		if r.PuntoVentaID == pv {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeBackend) CreateInventoryRecord(_ context.Context, req dto.CreateInventoryRecordRequest) (entity.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createReqs = append(f.createReqs, req)
	rec := entity.InventoryRecord{ID: len(f.records) + 100, LibroID: req.LibroID, PuntoVentaID: req.PuntoVentaID, Stock: req.Stock, StockMinimo: req.StockMinimo}
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeBackend) AdjustStock(_ context.Context, id int, req dto.AdjustStockRequest) (entity.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adjustReqs = append(f.adjustReqs, req)
	if f.adjustErr != nil {
		return entity.InventoryRecord{}, f.adjustErr
	}
	for i := range f.records {
		if f.records[i].ID == id {
			if f.records[i].Stock+req.Delta < 0 {
				return entity.InventoryRecord{}, &domain.APIError{Status: 400, Detail: "El stock no puede ser negativo"}
			}
			f.records[i].Stock += req.Delta
			return f.records[i], nil
		}
	}
	return entity.InventoryRecord{}, &domain.APIError{Status: 404, Detail: "Inventario PV no existe"}
}

func (f *fakeBackend) ListMovements(_ context.Context, _ string) ([]entity.StockMovement, error) {
	return nil, nil
}

func (f *fakeBackend) CreateMovement(_ context.Context, req dto.CreateMovementRequest) (entity.StockMovement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.movementReqs = append(f.movementReqs, req)
	return entity.StockMovement{ID: len(f.movementReqs), InventarioID: req.InventarioID, Tipo: entity.MovementKind(req.Tipo), Cantidad: req.Cantidad}, nil
}

func (f *fakeBackend) ListMaterials(_ context.Context, _ string) ([]entity.RawMaterial, error) {
	if f.matErr != nil {
		return nil, f.matErr
	}
	return f.materials, nil
}

func (f *fakeBackend) GetMaterial(context.Context, int) (entity.RawMaterial, error) {
	return entity.RawMaterial{}, domain.ErrNotFound
}

func (f *fakeBackend) CreateMaterial(context.Context, dto.CreateMaterialRequest) (entity.RawMaterial, error) {
	return entity.RawMaterial{}, nil
}

func (f *fakeBackend) UpdateMaterial(context.Context, int, dto.UpdateMaterialRequest) (entity.RawMaterial, error) {
	return entity.RawMaterial{}, nil
}

func (f *fakeBackend) DeleteMaterial(context.Context, int) error { return nil }

func (f *fakeBackend) RegisterMaterialEntry(context.Context, int, dto.MaterialEntryRequest) (entity.RawMaterial, error) {
	return entity.RawMaterial{}, nil
}

func (f *fakeBackend) ListPointsOfSale(context.Context, string) ([]entity.PointOfSale, error) {
	return nil, nil
}

func (f *fakeBackend) GetPointOfSale(_ context.Context, id int) (entity.PointOfSale, error) {
	if p, ok := f.pos[id]; ok {
		return p, nil
	}
	return entity.PointOfSale{}, &domain.APIError{Status: 404}
}

func (f *fakeBackend) CreatePointOfSale(context.Context, dto.CreatePointOfSaleRequest) (entity.PointOfSale, error) {
	return entity.PointOfSale{}, nil
}

func (f *fakeBackend) UpdatePointOfSale(context.Context, int, dto.UpdatePointOfSaleRequest) (entity.PointOfSale, error) {
	return entity.PointOfSale{}, nil
}

func (f *fakeBackend) DeletePointOfSale(context.Context, int) error { return nil }

func intPtr(n int) *int { return &n }
