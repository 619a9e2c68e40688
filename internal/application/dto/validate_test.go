package dto_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/domain"
)

func intPtr(n int) *int { return &n }

func TestValidate_LibroSinMaterias(t *testing.T) {
	req := dto.CreateBookRequest{Nombre: "Cien años", PaginasPorLibro: 1}

	err := dto.Validate(req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	var fe *dto.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "materias", fe.Field)

	req.Materias = []dto.MaterialRequirementRequest{}
	err = dto.Validate(req)
	require.Error(t, err)
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "materias", fe.Field)
}

func TestValidate_LibroValido(t *testing.T) {
	precio := decimal.NewFromInt(45000)
	req := dto.CreateBookRequest{
		Nombre:          "Cien años",
		Precio:          &precio,
		PaginasPorLibro: 1,
		Materias:        []dto.MaterialRequirementRequest{{MateriaPrimaID: 3, Cantidad: 2}},
	}
	assert.NoError(t, dto.Validate(req))
}

func TestValidate_PrecioNegativo(t *testing.T) {
	precio := decimal.NewFromInt(-1)
	err := dto.Validate(dto.UpdateBookRequest{Precio: &precio})
	var fe *dto.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "precio", fe.Field)
}

func TestValidate_AjusteDeltaCero(t *testing.T) {
	assert.Error(t, dto.Validate(dto.AdjustStockRequest{Delta: 0}))
	assert.NoError(t, dto.Validate(dto.AdjustStockRequest{Delta: -1}))
	assert.NoError(t, dto.Validate(dto.AdjustStockRequest{Delta: 7}))
}

func TestValidate_InventarioRequiereStockMinimo(t *testing.T) {
	req := dto.CreateInventoryRecordRequest{LibroID: 1, PuntoVentaID: 2, Stock: 10}
	err := dto.Validate(req)
	var fe *dto.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "stock_minimo", fe.Field)

	req.StockMinimo = intPtr(0)
	assert.NoError(t, dto.Validate(req))
}

func TestValidate_Usuario(t *testing.T) {
	base := dto.CreateUserRequest{Nombre: "Ana", Email: "ana@libreria.co", Rol: "admin", Contrasena: "secreta"}
	assert.NoError(t, dto.Validate(base))

	corta := base
	corta.Contrasena = "123"
	assert.Error(t, dto.Validate(corta))

	rol := base
	rol.Rol = "gerente"
	err := dto.Validate(rol)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin, vendedor")

	vendedor := base
	vendedor.Rol = "vendedor"
	err = dto.Validate(vendedor)
	var fe *dto.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "punto_venta_id", fe.Field)

	vendedor.PuntoVentaID = intPtr(4)
	assert.NoError(t, dto.Validate(vendedor))
}

func TestValidate_PuntoVentaTipo(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.CreatePointOfSaleRequest{Nombre: "Centro", Tipo: "metro"}))
	assert.Error(t, dto.Validate(dto.CreatePointOfSaleRequest{Nombre: "Centro", Tipo: "kiosko"}))
}

func TestAdjustStockRequest_SoloDelta(t *testing.T) {
	b, err := json.Marshal(dto.AdjustStockRequest{Delta: -3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"delta":-3}`, string(b))
}

func TestCreateBookRequest_PrecioNumerico(t *testing.T) {
	precio := decimal.NewFromInt(32000)
	b, err := json.Marshal(dto.CreateBookRequest{
		Nombre: "Rayuela", Precio: &precio, PaginasPorLibro: 1, CantidadLibros: 5,
		Materias: []dto.MaterialRequirementRequest{{MateriaPrimaID: 1, Cantidad: 3}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"nombre":"Rayuela","precio":32000,"paginas_por_libro":1,"cantidad_libros":5,"materias":[{"id_mp":1,"cantidad":3}]}`, string(b))
}

func TestBackendTime_SinZona(t *testing.T) {
	var m dto.MovementResponse
	err := json.Unmarshal([]byte(`{"id_mov_libro":1,"inventario_id":2,"tipo":"venta","cantidad":1,"usuario_id":null,"fecha_movimiento":"2025-03-01T14:05:09.123456","observaciones":null}`), &m)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 14, 5, 9, 123456000, time.UTC), m.FechaMovimiento.Time)
	assert.Equal(t, "", m.ToEntity().Observaciones)
}

func TestFormValues(t *testing.T) {
	form := dto.FormValues(func(k string) string {
		return map[string]string{"delta": " -2 ", "cantidad": "abc", "precio": "12,50", "vacio": ""}[k]
	})

	d, err := form.Int("delta", "el ajuste", -1000, 1000)
	require.NoError(t, err)
	assert.Equal(t, -2, d)

	_, err = form.Int("cantidad", "la cantidad", 1, 1000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, "La cantidad debe ser un número entero.", err.Error())

	_, err = form.Int("delta", "la cantidad", 1, 10)
	assert.Equal(t, "La cantidad debe estar entre 1 y 10.", err.Error())

	p, err := form.Decimal("precio", "el precio")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.5").Equal(p))

	n, err := form.OptionalInt("vacio", "el mínimo", 0, 10)
	assert.NoError(t, err)
	assert.Nil(t, n)
}

func TestTableView(t *testing.T) {
	vacia := dto.TableView[string]{Placeholder: &dto.Placeholder{Kind: dto.PlaceholderEmpty}}
	assert.Equal(t, 1, vacia.RowCount())
	assert.False(t, vacia.Failed())

	llena := dto.TableView[string]{Rows: []string{"a", "b"}}
	assert.Equal(t, 2, llena.RowCount())
}
