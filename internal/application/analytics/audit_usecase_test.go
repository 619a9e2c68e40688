package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/libreria-consola/internal/application/analytics"
	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/internal/infrastructure/cache"
)

type fakeAuditLog struct {
	entries []entity.AuditEntry
	err     error
}

func (f *fakeAuditLog) Recent(context.Context, int) ([]entity.AuditEntry, error) {
	return f.entries, f.err
}

type fakeUsers struct {
	items []entity.User
	err   error
}

func (f *fakeUsers) ListUsers(context.Context, string) ([]entity.User, error) { return f.items, f.err }
func (f *fakeUsers) GetUser(context.Context, int) (entity.User, error)        { return entity.User{}, nil }
func (f *fakeUsers) CreateUser(context.Context, dto.CreateUserRequest) (entity.User, error) {
	return entity.User{}, nil
}
func (f *fakeUsers) UpdateUser(context.Context, int, dto.UpdateUserRequest) (entity.User, error) {
	return entity.User{}, nil
}
func (f *fakeUsers) DeleteUser(context.Context, int) error { return nil }
func (f *fakeUsers) Login(context.Context, dto.LoginRequest) (dto.LoginResponse, error) {
	return dto.LoginResponse{}, nil
}

func TestAuditTable(t *testing.T) {
	delta := -2
	log := &fakeAuditLog{entries: []entity.AuditEntry{
		{UserID: 1, Action: "ajustar", Resource: "inventario-pv", ResourceID: 42, Delta: &delta, CreatedAt: time.Date(2026, 3, 1, 8, 5, 0, 0, time.UTC)},
		{UserID: 9, Action: "crear", Resource: "libros", ResourceID: 3},
	}}
	users := &fakeUsers{items: []entity.User{{ID: 1, Nombre: "Ana"}}}

	tbl := analytics.NewAuditUseCase(log, users, cache.NewFactory(16), nil).Table(context.Background())

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Ana", tbl.Rows[0].Usuario)
	assert.Equal(t, "Ajuste de stock", tbl.Rows[0].Accion)
	assert.Equal(t, "inventario-pv #42", tbl.Rows[0].Recurso)
	assert.Equal(t, "-2", tbl.Rows[0].Delta)
	assert.Equal(t, "#9", tbl.Rows[1].Usuario, "usuario desconocido muestra el id")
}

func TestAuditTable_Deshabilitada(t *testing.T) {
	uc := analytics.NewAuditUseCase(nil, &fakeUsers{}, cache.NewFactory(16), nil)

	tbl := uc.Table(context.Background())

	assert.False(t, uc.Enabled())
	assert.Equal(t, 1, tbl.RowCount())
	assert.False(t, tbl.Failed())
}

func TestAuditTable_ErrorDeLectura(t *testing.T) {
	uc := analytics.NewAuditUseCase(&fakeAuditLog{err: errors.New("db caída")}, &fakeUsers{}, cache.NewFactory(16), nil)

	assert.True(t, uc.Table(context.Background()).Failed())
}
