package ports

import (
	"context"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

// Puertos de salida hacia la API REST de la librería. La implementación concreta
// (infrastructure/libreria) traduce fallos de red, respuestas no exitosas y cuerpos
// malformados a domain.ErrNetwork, *domain.APIError y domain.ErrMalformedResponse.
// Todas las llamadas reciben un contexto para poder cortar un backend colgado.

// BookGateway catálogo de libros.
type BookGateway interface {
	ListBooks(ctx context.Context, q string) ([]entity.Book, error)
	GetBook(ctx context.Context, id int) (entity.Book, error)
	CreateBook(ctx context.Context, req dto.CreateBookRequest) (entity.Book, error)
	UpdateBook(ctx context.Context, id int, req dto.UpdateBookRequest) (entity.Book, error)
	DeleteBook(ctx context.Context, id int) error
}

// MaterialGateway materias primas y sus entradas.
type MaterialGateway interface {
	ListMaterials(ctx context.Context, q string) ([]entity.RawMaterial, error)
	GetMaterial(ctx context.Context, id int) (entity.RawMaterial, error)
	CreateMaterial(ctx context.Context, req dto.CreateMaterialRequest) (entity.RawMaterial, error)
	UpdateMaterial(ctx context.Context, id int, req dto.UpdateMaterialRequest) (entity.RawMaterial, error)
	DeleteMaterial(ctx context.Context, id int) error
	RegisterMaterialEntry(ctx context.Context, id int, req dto.MaterialEntryRequest) (entity.RawMaterial, error)
}

// PointOfSaleGateway puntos de venta.
type PointOfSaleGateway interface {
	ListPointsOfSale(ctx context.Context, q string) ([]entity.PointOfSale, error)
	GetPointOfSale(ctx context.Context, id int) (entity.PointOfSale, error)
	CreatePointOfSale(ctx context.Context, req dto.CreatePointOfSaleRequest) (entity.PointOfSale, error)
	UpdatePointOfSale(ctx context.Context, id int, req dto.UpdatePointOfSaleRequest) (entity.PointOfSale, error)
	DeletePointOfSale(ctx context.Context, id int) error
}

// UserGateway usuarios y login.
type UserGateway interface {
	ListUsers(ctx context.Context, q string) ([]entity.User, error)
	GetUser(ctx context.Context, id int) (entity.User, error)
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (entity.User, error)
	UpdateUser(ctx context.Context, id int, req dto.UpdateUserRequest) (entity.User, error)
	DeleteUser(ctx context.Context, id int) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

// InventoryGateway inventario por punto de venta.
type InventoryGateway interface {
	ListInventory(ctx context.Context, q string) ([]entity.InventoryRecord, error)
	ListInventoryByPointOfSale(ctx context.Context, pointOfSaleID int) ([]entity.InventoryRecord, error)
	CreateInventoryRecord(ctx context.Context, req dto.CreateInventoryRecordRequest) (entity.InventoryRecord, error)
	AdjustStock(ctx context.Context, inventoryID int, req dto.AdjustStockRequest) (entity.InventoryRecord, error)
}

// MovementGateway movimientos de inventario (solo alta y lectura).
type MovementGateway interface {
	ListMovements(ctx context.Context, q string) ([]entity.StockMovement, error)
	CreateMovement(ctx context.Context, req dto.CreateMovementRequest) (entity.StockMovement, error)
}

// Backend reúne todos los puertos; lo implementa el cliente REST.
type Backend interface {
	BookGateway
	MaterialGateway
	PointOfSaleGateway
	UserGateway
	InventoryGateway
	MovementGateway
}

// AuditRecorder bitácora de mutaciones exitosas hechas desde la consola.
type AuditRecorder interface {
	Record(ctx context.Context, entry entity.AuditEntry) error
}

// AuditLog lectura de la bitácora, la entrada más reciente primero.
type AuditLog interface {
	Recent(ctx context.Context, limit int) ([]entity.AuditEntry, error)
}

// LabelStore índice id -> nombre para resolver referencias al pintar tablas.
type LabelStore interface {
	Put(id int, label string)
	Label(id int) string
}

// LabelStoreFactory crea un índice vacío; se llama una vez por carga de página.
type LabelStoreFactory func() LabelStore

// FillLabels carga en store el par (id, nombre) de cada item.
func FillLabels[T any](store LabelStore, items []T, key func(T) (int, string)) {
	for _, it := range items {
		store.Put(key(it))
	}
}
