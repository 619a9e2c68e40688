package listing_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/domain"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

type fakeAudit struct {
	entries []entity.AuditEntry
	err     error
}

func (f *fakeAudit) Record(_ context.Context, e entity.AuditEntry) error {
	f.entries = append(f.entries, e)
	return f.err
}

// puntos simula el backend: lista en memoria + contador de lecturas.
type puntos struct {
	items []entity.PointOfSale
	reads int
	err   error
}

func (p *puntos) list(_ context.Context, _ string) ([]entity.PointOfSale, error) {
	p.reads++
	if p.err != nil {
		return nil, p.err
	}
	return append([]entity.PointOfSale(nil), p.items...), nil
}

func nombre(p entity.PointOfSale) string { return p.Nombre }

func TestLister_ColeccionVaciaUnaFila(t *testing.T) {
	be := &puntos{}
	l := listing.NewLister(be.list, nombre, "No hay puntos de venta registrados.", nil)

	view := l.List(context.Background(), "")

	assert.Equal(t, 1, view.RowCount())
	require.NotNil(t, view.Placeholder)
	assert.Equal(t, dto.PlaceholderEmpty, view.Placeholder.Kind)
	assert.Equal(t, "No hay puntos de venta registrados.", view.Placeholder.Message)
	assert.Empty(t, view.Rows)
}

func TestLister_FalloUnaFilaDeError(t *testing.T) {
	cases := map[string]error{
		"red":        fmt.Errorf("%w: GET /puntos-venta/: refused", domain.ErrNetwork),
		"status 500": &domain.APIError{Status: 500},
		"malformada": fmt.Errorf("%w: GET /puntos-venta/", domain.ErrMalformedResponse),
	}
	for name, err := range cases {
		t.Run(name, func(t *testing.T) {
			be := &puntos{err: err}
			view := listing.NewLister(be.list, nombre, "vacío", nil).List(context.Background(), "")

			assert.Equal(t, 1, view.RowCount())
			assert.True(t, view.Failed())
			assert.NotEmpty(t, view.Placeholder.Message)
		})
	}
}

func TestLister_OrdenDelBackend(t *testing.T) {
	be := &puntos{items: []entity.PointOfSale{{ID: 9, Nombre: "Z"}, {ID: 1, Nombre: "A"}}}

	view := listing.NewLister(be.list, nombre, "vacío", nil).List(context.Background(), "")

	assert.Equal(t, []string{"Z", "A"}, view.Rows)
	assert.Nil(t, view.Placeholder)
}

func TestSubmitter_FalloNoRecargaNiNotificaExito(t *testing.T) {
	be := &puntos{items: []entity.PointOfSale{{ID: 1, Nombre: "Centro"}}}
	audit := &fakeAudit{}
	lister := listing.NewLister(be.list, nombre, "vacío", nil)
	sub := listing.NewSubmitter(func(ctx context.Context) dto.TableView[string] { return lister.List(ctx, "") }, audit, nil)

	out := sub.Submit(context.Background(), listing.Mutation{
		Success: "Punto de venta eliminado correctamente.",
		Audit:   entity.AuditEntry{Action: "eliminar", Resource: "puntos-venta", ResourceID: 1},
		Run: func(context.Context) (int, error) {
			return 0, &domain.APIError{Status: 400, Detail: "FOREIGN KEY constraint failed"}
		},
	})

	assert.False(t, out.Succeeded())
	assert.Equal(t, dto.NotifyError, out.Notification.Level)
	assert.Equal(t, "FOREIGN KEY constraint failed", out.Notification.Message)
	assert.Nil(t, out.Table)
	assert.Equal(t, 0, be.reads, "un fallo no recarga la tabla")
	assert.Empty(t, audit.entries)
}

func TestSubmitter_ErrorDeRedMensajeGenerico(t *testing.T) {
	sub := listing.NewSubmitter[string](nil, nil, nil)

	out := sub.Submit(context.Background(), listing.Mutation{
		Success: "ok",
		Run: func(context.Context) (int, error) {
			return 0, fmt.Errorf("%w: POST /libros/: dial tcp", domain.ErrNetwork)
		},
	})

	assert.Equal(t, listing.MsgConnection, out.Notification.Message)
}

func TestSubmitter_PatchSeReflejaEnLaRecarga(t *testing.T) {
	be := &puntos{items: []entity.PointOfSale{{ID: 1, Nombre: "Centro"}, {ID: 2, Nombre: "Norte"}}}
	audit := &fakeAudit{}
	lister := listing.NewLister(be.list, nombre, "vacío", nil)
	sub := listing.NewSubmitter(func(ctx context.Context) dto.TableView[string] { return lister.List(ctx, "") }, audit, nil)

	out := sub.Submit(context.Background(), listing.Mutation{
		Success: "Punto de venta actualizado.",
		Audit:   entity.AuditEntry{UserID: 7, Action: "actualizar", Resource: "puntos-venta"},
		Run: func(context.Context) (int, error) {
			be.items[1].Nombre = "Norte (remodelado)"
			return 2, nil
		},
	})

	require.True(t, out.Succeeded())
	require.NotNil(t, out.Table)
	assert.Equal(t, []string{"Centro", "Norte (remodelado)"}, out.Table.Rows)
	assert.Equal(t, 1, be.reads)

	// Misma respuesta del backend -> misma tabla.
	again := lister.List(context.Background(), "")
	assert.Equal(t, out.Table.Rows, again.Rows)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, 2, audit.entries[0].ResourceID)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", audit.entries[0].ID.String())
}

func TestSubmitter_BitacoraFallidaNoAfectaResultado(t *testing.T) {
	audit := &fakeAudit{err: errors.New("db caída")}
	sub := listing.NewSubmitter[string](nil, audit, nil)

	out := sub.Submit(context.Background(), listing.Mutation{
		Success: "Libro creado correctamente.",
		Audit:   entity.AuditEntry{Action: "crear", Resource: "libros"},
		Run:     func(context.Context) (int, error) { return 5, nil },
	})

	assert.True(t, out.Succeeded())
	assert.Nil(t, out.Table)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Libro no encontrado", listing.UserMessage(&domain.APIError{Status: 404, Detail: "Libro no encontrado"}))
	assert.Equal(t, listing.MsgNotFound, listing.UserMessage(&domain.APIError{Status: 404}))
	assert.Equal(t, "Error del servidor (código 502).", listing.UserMessage(&domain.APIError{Status: 502}))
	assert.Equal(t, listing.MsgOutOfStock, listing.UserMessage(domain.ErrOutOfStock))
	assert.Equal(t, "Debes ingresar la cantidad.", listing.UserMessage(&dto.FieldError{Field: "cantidad", Message: "Debes ingresar la cantidad."}))
	assert.Equal(t, listing.MsgUnexpected, listing.UserMessage(errors.New("x")))
	assert.Equal(t, "", listing.UserMessage(nil))
}
