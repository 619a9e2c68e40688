package inventory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/libreria-consola/internal/application/inventory"
	"github.com/jhoicas/libreria-consola/internal/domain"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

func TestScan_MismaReglaParaLibrosYMaterias(t *testing.T) {
	be := newBackend()
	be.materials = []entity.RawMaterial{
		{ID: 1, Nombre: "Papel bond", StockActual: 3, StockMinimo: 5},
		{ID: 2, Nombre: "Tinta negra", StockActual: 10, StockMinimo: 5},
	}
	uc := inventory.NewAlertsUseCase(be, be)

	alerts := uc.Scan(context.Background())

	require.NoError(t, alerts.BooksErr)
	require.NoError(t, alerts.MaterialsErr)
	require.Len(t, alerts.Materials, 1)
	assert.Equal(t, "Papel bond", alerts.Materials[0].Nombre)
	require.Len(t, alerts.Books, 2)
	assert.Equal(t, 42, alerts.Books[0].ID)
	assert.Equal(t, 44, alerts.Books[1].ID)
	assert.Equal(t, 3, alerts.Count())
	assert.Len(t, alerts.Rows(), 3)
}

func TestScan_UnFalloNoOcultaLaOtraColeccion(t *testing.T) {
	be := newBackend()
	be.matErr = fmt.Errorf("%w: GET /materias_primas/", domain.ErrNetwork)
	uc := inventory.NewAlertsUseCase(be, be)

	alerts := uc.Scan(context.Background())

	assert.Len(t, alerts.Books, 2)
	assert.ErrorIs(t, alerts.MaterialsErr, domain.ErrNetwork)
	assert.True(t, alerts.MaterialTable().Failed())
	assert.False(t, alerts.BookTable().Failed())
}

func TestScan_SinAlertasFilaInformativa(t *testing.T) {
	be := &fakeBackend{}
	uc := inventory.NewAlertsUseCase(be, be)

	alerts := uc.Scan(context.Background())

	assert.Equal(t, 1, alerts.BookTable().RowCount())
	assert.Equal(t, "No hay alertas de stock.", alerts.BookTable().Placeholder.Message)
	assert.Equal(t, 1, alerts.MaterialTable().RowCount())
}
