package http_test

import (
	"context"
	"sync"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/domain"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

// fakeBackend backend en memoria. down simula un backend caído en todas las lecturas;
// failWith, si no es nil, es el error que devuelven.
type fakeBackend struct {
	mu sync.Mutex

	down      bool
	failWith  error
	lastQuery string
	books     []entity.Book
	materials []entity.RawMaterial
	points    []entity.PointOfSale
	users     []entity.User
	inventory []entity.InventoryRecord
	movements []entity.StockMovement

	loginResp dto.LoginResponse
	loginErr  error

	createdBooks []dto.CreateBookRequest
	adjustCalls  []dto.AdjustStockRequest
	createdMovs  []dto.CreateMovementRequest
}

var _ ports.Backend = (*fakeBackend)(nil)

func (f *fakeBackend) fail() error {
	if f.failWith != nil {
		return f.failWith
	}
	if f.down {
		return domain.ErrNetwork
	}
	return nil
}

func (f *fakeBackend) ListBooks(_ context.Context, q string) ([]entity.Book, error) {
	f.mu.Lock()
	f.lastQuery = q
	f.mu.Unlock()
	return f.books, f.fail()
}

func (f *fakeBackend) GetBook(_ context.Context, id int) (entity.Book, error) {
	for _, b := range f.books {
		if b.ID == id {
			return b, nil
		}
	}
	return entity.Book{}, &domain.APIError{Status: 404}
}

func (f *fakeBackend) CreateBook(_ context.Context, req dto.CreateBookRequest) (entity.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdBooks = append(f.createdBooks, req)
	b := entity.Book{ID: len(f.books) + 1, Nombre: req.Nombre, Precio: req.Precio}
	f.books = append(f.books, b)
	return b, nil
}

func (f *fakeBackend) UpdateBook(_ context.Context, id int, _ dto.UpdateBookRequest) (entity.Book, error) {
	return f.GetBook(context.Background(), id)
}

func (f *fakeBackend) DeleteBook(context.Context, int) error { return f.fail() }

func (f *fakeBackend) ListMaterials(context.Context, string) ([]entity.RawMaterial, error) {
	return f.materials, f.fail()
}

func (f *fakeBackend) GetMaterial(context.Context, int) (entity.RawMaterial, error) {
	return entity.RawMaterial{}, &domain.APIError{Status: 404}
}

func (f *fakeBackend) CreateMaterial(_ context.Context, req dto.CreateMaterialRequest) (entity.RawMaterial, error) {
	return entity.RawMaterial{ID: 1, Nombre: req.Nombre}, nil
}

func (f *fakeBackend) UpdateMaterial(context.Context, int, dto.UpdateMaterialRequest) (entity.RawMaterial, error) {
	return entity.RawMaterial{}, nil
}

func (f *fakeBackend) DeleteMaterial(context.Context, int) error { return nil }

func (f *fakeBackend) RegisterMaterialEntry(_ context.Context, id int, _ dto.MaterialEntryRequest) (entity.RawMaterial, error) {
	return entity.RawMaterial{ID: id}, nil
}

func (f *fakeBackend) ListPointsOfSale(context.Context, string) ([]entity.PointOfSale, error) {
	return f.points, f.fail()
}

func (f *fakeBackend) GetPointOfSale(_ context.Context, id int) (entity.PointOfSale, error) {
	for _, p := range f.points {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.PointOfSale{}, &domain.APIError{Status: 404}
}

func (f *fakeBackend) CreatePointOfSale(_ context.Context, req dto.CreatePointOfSaleRequest) (entity.PointOfSale, error) {
	return entity.PointOfSale{ID: 1, Nombre: req.Nombre, Tipo: req.Tipo}, nil
}

func (f *fakeBackend) UpdatePointOfSale(context.Context, int, dto.UpdatePointOfSaleRequest) (entity.PointOfSale, error) {
	return entity.PointOfSale{}, nil
}

func (f *fakeBackend) DeletePointOfSale(context.Context, int) error { return nil }

func (f *fakeBackend) ListUsers(context.Context, string) ([]entity.User, error) {
	return f.users, f.fail()
}

func (f *fakeBackend) GetUser(context.Context, int) (entity.User, error) {
	return entity.User{}, &domain.APIError{Status: 404}
}

func (f *fakeBackend) CreateUser(_ context.Context, req dto.CreateUserRequest) (entity.User, error) {
	return entity.User{ID: 1, Nombre: req.Nombre, Email: req.Email, Rol: req.Rol}, nil
}

func (f *fakeBackend) UpdateUser(context.Context, int, dto.UpdateUserRequest) (entity.User, error) {
	return entity.User{}, nil
}

func (f *fakeBackend) DeleteUser(context.Context, int) error { return nil }

func (f *fakeBackend) Login(context.Context, dto.LoginRequest) (dto.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeBackend) ListInventory(context.Context, string) ([]entity.InventoryRecord, error) {
	return f.inventory, f.fail()
}

func (f *fakeBackend) ListInventoryByPointOfSale(_ context.Context, pv int) ([]entity.InventoryRecord, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	out := []entity.InventoryRecord{}
	for _, r := range f.inventory {
		if r.PuntoVentaID == pv {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeBackend) CreateInventoryRecord(_ context.Context, req dto.CreateInventoryRecordRequest) (entity.InventoryRecord, error) {
	return entity.InventoryRecord{ID: 99, LibroID: req.LibroID, PuntoVentaID: req.PuntoVentaID, Stock: req.Stock}, nil
}

func (f *fakeBackend) AdjustStock(_ context.Context, id int, req dto.AdjustStockRequest) (entity.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adjustCalls = append(f.adjustCalls, req)
	for i := range f.inventory {
		if f.inventory[i].ID == id {
			f.inventory[i].Stock += req.Delta
			return f.inventory[i], nil
		}
	}
	return entity.InventoryRecord{}, &domain.APIError{Status: 404}
}

func (f *fakeBackend) ListMovements(context.Context, string) ([]entity.StockMovement, error) {
	return f.movements, f.fail()
}

func (f *fakeBackend) CreateMovement(_ context.Context, req dto.CreateMovementRequest) (entity.StockMovement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createdMovs = append(f.createdMovs, req)
	return entity.StockMovement{ID: len(f.createdMovs), InventarioID: req.InventarioID, Cantidad: req.Cantidad}, nil
}
