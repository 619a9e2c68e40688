package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/libreria-consola/internal/application/catalog"
	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/domain"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

var admin = entity.Session{UserID: 1, Nombre: "Admin", Rol: entity.RoleAdmin}

// ── libros ────────────────────────────────────────────────────────────────────

type fakeBooks struct {
	items   []entity.Book
	creates []dto.CreateBookRequest
	patches int
}

func (f *fakeBooks) ListBooks(context.Context, string) ([]entity.Book, error) {
	return append([]entity.Book(nil), f.items...), nil
}

func (f *fakeBooks) GetBook(_ context.Context, id int) (entity.Book, error) {
	for _, b := range f.items {
		if b.ID == id {
			return b, nil
		}
	}
	return entity.Book{}, &domain.APIError{Status: 404, Detail: "Libro no encontrado"}
}

func (f *fakeBooks) CreateBook(_ context.Context, req dto.CreateBookRequest) (entity.Book, error) {
	f.creates = append(f.creates, req)
	b := entity.Book{ID: len(f.items) + 1, Nombre: req.Nombre, Precio: req.Precio, StockTotal: req.CantidadLibros}
	f.items = append(f.items, b)
	return b, nil
}

func (f *fakeBooks) UpdateBook(_ context.Context, id int, req dto.UpdateBookRequest) (entity.Book, error) {
	f.patches++
	for i := range f.items {
		if f.items[i].ID == id {
			if req.Nombre != nil {
				f.items[i].Nombre = *req.Nombre
			}
			if req.Precio != nil {
				f.items[i].Precio = req.Precio
			}
			return f.items[i], nil
		}
	}
	return entity.Book{}, &domain.APIError{Status: 404, Detail: "Libro no encontrado"}
}

func (f *fakeBooks) DeleteBook(context.Context, int) error { return nil }

func TestCreateBook_SinMateriasNoSeEnvia(t *testing.T) {
	books := &fakeBooks{}
	uc := catalog.NewBookUseCase(books, nil, nil)

	out := uc.Create(context.Background(), admin, dto.CreateBookRequest{Nombre: "Rayuela", PaginasPorLibro: 1, Materias: []dto.MaterialRequirementRequest{}})

	assert.False(t, out.Succeeded())
	assert.Equal(t, dto.NotifyError, out.Notification.Level)
	assert.Contains(t, out.Notification.Message, "materias")
	assert.Empty(t, books.creates, "no se emite ninguna petición")
	assert.Nil(t, out.Table)
}

func TestCreateBook_ConMaterias(t *testing.T) {
	books := &fakeBooks{}
	uc := catalog.NewBookUseCase(books, nil, nil)
	precio := decimal.NewFromInt(32000)

	out := uc.Create(context.Background(), admin, dto.CreateBookRequest{
		Nombre: "Rayuela", Precio: &precio, PaginasPorLibro: 1, CantidadLibros: 10,
		Materias: []dto.MaterialRequirementRequest{{MateriaPrimaID: 1, Cantidad: 3}},
	})

	require.True(t, out.Succeeded())
	require.Len(t, books.creates, 1)
	require.NotNil(t, out.Table)
	assert.Equal(t, "Rayuela", out.Table.Rows[0].Nombre)
}

func TestUpdateBook_RecargaReflejaCambios(t *testing.T) {
	precio := decimal.NewFromInt(20000)
	books := &fakeBooks{items: []entity.Book{{ID: 1, Nombre: "Ficciones", Precio: &precio, StockTotal: 4}}}
	uc := catalog.NewBookUseCase(books, nil, nil)
	nuevo := decimal.NewFromInt(25000)
	nombre := "Ficciones (bolsillo)"

	out := uc.Update(context.Background(), admin, 1, dto.UpdateBookRequest{Nombre: &nombre, Precio: &nuevo})

	require.True(t, out.Succeeded())
	require.NotNil(t, out.Table)
	require.Len(t, out.Table.Rows, 1)
	assert.Equal(t, "Ficciones (bolsillo)", out.Table.Rows[0].Nombre)
	assert.Equal(t, "$ 25.000", out.Table.Rows[0].Precio)
	assert.Equal(t, uc.Table(context.Background(), "").Rows, out.Table.Rows)
}

func TestUpdateBook_NoEncontrado(t *testing.T) {
	books := &fakeBooks{}
	uc := catalog.NewBookUseCase(books, nil, nil)
	nombre := "x"

	out := uc.Update(context.Background(), admin, 9, dto.UpdateBookRequest{Nombre: &nombre})

	assert.Equal(t, "Libro no encontrado", out.Notification.Message)
	assert.Nil(t, out.Table)
}

// ── puntos de venta ───────────────────────────────────────────────────────────

type fakePOS struct {
	items     []entity.PointOfSale
	deleteErr error
}

func (f *fakePOS) ListPointsOfSale(context.Context, string) ([]entity.PointOfSale, error) {
	return f.items, nil
}
func (f *fakePOS) GetPointOfSale(context.Context, int) (entity.PointOfSale, error) {
	return entity.PointOfSale{}, nil
}
func (f *fakePOS) CreatePointOfSale(_ context.Context, req dto.CreatePointOfSaleRequest) (entity.PointOfSale, error) {
	p := entity.PointOfSale{ID: len(f.items) + 1, Nombre: req.Nombre, Tipo: req.Tipo}
	f.items = append(f.items, p)
	return p, nil
}
func (f *fakePOS) UpdatePointOfSale(context.Context, int, dto.UpdatePointOfSaleRequest) (entity.PointOfSale, error) {
	return entity.PointOfSale{}, nil
}
func (f *fakePOS) DeletePointOfSale(context.Context, int) error { return f.deleteErr }

func TestDeletePointOfSale_Diagnosticos(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"clave foránea", &domain.APIError{Status: 500, Detail: "(sqlite3.IntegrityError) FOREIGN KEY constraint failed"}, catalog.MsgPointOfSaleInUse},
		{"no encontrado", &domain.APIError{Status: 404}, catalog.MsgPointOfSaleNotFound},
		{"otro detalle", &domain.APIError{Status: 400, Detail: "No permitido"}, "No permitido"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := catalog.NewPointOfSaleUseCase(&fakePOS{deleteErr: tc.err}, nil, nil)

			out := uc.Delete(context.Background(), admin, 3)

			assert.False(t, out.Succeeded())
			assert.Equal(t, tc.want, out.Notification.Message)
		})
	}
}

func TestCreatePointOfSale_TipoInvalido(t *testing.T) {
	pos := &fakePOS{}
	uc := catalog.NewPointOfSaleUseCase(pos, nil, nil)

	out := uc.Create(context.Background(), admin, dto.CreatePointOfSaleRequest{Nombre: "Kiosko", Tipo: "kiosko"})

	assert.False(t, out.Succeeded())
	assert.Empty(t, pos.items)
}

// ── usuarios ──────────────────────────────────────────────────────────────────

type fakeUsers struct {
	items   []entity.User
	deletes []int
}

func (f *fakeUsers) ListUsers(context.Context, string) ([]entity.User, error) { return f.items, nil }
func (f *fakeUsers) GetUser(context.Context, int) (entity.User, error)        { return entity.User{}, nil }
func (f *fakeUsers) CreateUser(_ context.Context, req dto.CreateUserRequest) (entity.User, error) {
	u := entity.User{ID: len(f.items) + 1, Nombre: req.Nombre, Email: req.Email, Rol: req.Rol, PuntoVentaID: req.PuntoVentaID}
	f.items = append(f.items, u)
	return u, nil
}
func (f *fakeUsers) UpdateUser(context.Context, int, dto.UpdateUserRequest) (entity.User, error) {
	return entity.User{}, nil
}
func (f *fakeUsers) DeleteUser(_ context.Context, id int) error {
	f.deletes = append(f.deletes, id)
	return nil
}
func (f *fakeUsers) Login(context.Context, dto.LoginRequest) (dto.LoginResponse, error) {
	return dto.LoginResponse{}, nil
}

type mapStore map[int]string

func (m mapStore) Put(id int, label string) { m[id] = label }
func (m mapStore) Label(id int) string {
	if l, ok := m[id]; ok {
		return l
	}
	return "#"
}

func newLabels() ports.LabelStore { return mapStore{} }

func TestUserTable_NombreDelPuntoDeVenta(t *testing.T) {
	pv := 2
	users := &fakeUsers{items: []entity.User{{ID: 7, Nombre: "Ana", Rol: entity.RoleVendedor, PuntoVentaID: &pv}}}
	pos := &fakePOS{items: []entity.PointOfSale{{ID: 2, Nombre: "Centro"}}}
	uc := catalog.NewUserUseCase(users, pos, newLabels, nil, nil)

	view := uc.Table(context.Background(), "")

	require.Len(t, view.Rows, 1)
	assert.Equal(t, "Centro", view.Rows[0].PuntoVenta)
}

func TestCreateUser_AdminSinPuntoDeVenta(t *testing.T) {
	users := &fakeUsers{}
	uc := catalog.NewUserUseCase(users, &fakePOS{}, newLabels, nil, nil)
	pv := 3

	out := uc.Create(context.Background(), admin, dto.CreateUserRequest{Nombre: "Eva", Email: "eva@libreria.co", Rol: entity.RoleAdmin, PuntoVentaID: &pv, Contrasena: "secreta"})

	require.True(t, out.Succeeded(), out.Notification.Message)
	assert.Nil(t, users.items[0].PuntoVentaID)
}

func TestDeleteUser_NoASiMismo(t *testing.T) {
	users := &fakeUsers{}
	uc := catalog.NewUserUseCase(users, &fakePOS{}, newLabels, nil, nil)

	out := uc.Delete(context.Background(), admin, admin.UserID)

	assert.False(t, out.Succeeded())
	assert.Empty(t, users.deletes)
}

// ── materias primas ───────────────────────────────────────────────────────────

type fakeMaterials struct {
	entries []dto.MaterialEntryRequest
}

func (f *fakeMaterials) ListMaterials(context.Context, string) ([]entity.RawMaterial, error) {
	return []entity.RawMaterial{{ID: 4, Nombre: "Papel", StockActual: 23, StockMinimo: 5}}, nil
}
func (f *fakeMaterials) GetMaterial(context.Context, int) (entity.RawMaterial, error) {
	return entity.RawMaterial{}, nil
}
func (f *fakeMaterials) CreateMaterial(context.Context, dto.CreateMaterialRequest) (entity.RawMaterial, error) {
	return entity.RawMaterial{ID: 1}, nil
}
func (f *fakeMaterials) UpdateMaterial(context.Context, int, dto.UpdateMaterialRequest) (entity.RawMaterial, error) {
	return entity.RawMaterial{ID: 1}, nil
}
func (f *fakeMaterials) DeleteMaterial(context.Context, int) error { return nil }
func (f *fakeMaterials) RegisterMaterialEntry(_ context.Context, id int, req dto.MaterialEntryRequest) (entity.RawMaterial, error) {
	f.entries = append(f.entries, req)
	return entity.RawMaterial{ID: id}, nil
}

func TestRegisterEntry_UsuarioDeLaSesion(t *testing.T) {
	mats := &fakeMaterials{}
	uc := catalog.NewMaterialUseCase(mats, nil, nil)
	vendedor := entity.Session{UserID: 7, Rol: entity.RoleVendedor, PuntoVentaID: 2}

	out := uc.RegisterEntry(context.Background(), vendedor, 4, 20, nil)

	require.True(t, out.Succeeded())
	require.Len(t, mats.entries, 1)
	assert.Equal(t, 7, mats.entries[0].UsuarioID)
	assert.Equal(t, 20, mats.entries[0].Cantidad)
}

func TestRegisterEntry_CantidadNoPositiva(t *testing.T) {
	mats := &fakeMaterials{}
	uc := catalog.NewMaterialUseCase(mats, nil, nil)

	out := uc.RegisterEntry(context.Background(), admin, 4, 0, nil)

	assert.Equal(t, "La cantidad debe ser un número positivo.", out.Notification.Message)
	assert.Empty(t, mats.entries)
}

func TestRegisterEntry_ObservacionesDemasiadoLargas(t *testing.T) {
	mats := &fakeMaterials{}
	uc := catalog.NewMaterialUseCase(mats, nil, nil)
	obs := strings.Repeat("x", 256)

	out := uc.RegisterEntry(context.Background(), admin, 4, 3, &obs)

	assert.False(t, out.Succeeded())
	assert.Equal(t, "El campo observaciones admite como máximo 255 caracteres.", out.Notification.Message)
	assert.Empty(t, mats.entries)
}
