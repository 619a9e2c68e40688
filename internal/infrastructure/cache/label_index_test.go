package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/internal/infrastructure/cache"
)

func TestLabelIndex_FillLabels(t *testing.T) {
	idx, err := cache.NewLabelIndex(0)
	require.NoError(t, err)

	points := []entity.PointOfSale{{ID: 1, Nombre: "Centro"}, {ID: 2, Nombre: "Metro Baquedano"}}
	ports.FillLabels(idx, points, func(p entity.PointOfSale) (int, string) { return p.ID, p.Nombre })

	assert.Equal(t, "Centro", idx.Label(1))
	assert.Equal(t, "Metro Baquedano", idx.Label(2))
	assert.Equal(t, "#9", idx.Label(9))
}

func TestLabelIndex_Capacidad(t *testing.T) {
	idx, err := cache.NewLabelIndex(2)
	require.NoError(t, err)

	idx.Put(1, "a")
	idx.Put(2, "b")
	idx.Put(3, "c")

	assert.Equal(t, "#1", idx.Label(1), "el menos usado se descarta")
	assert.Equal(t, "b", idx.Label(2))
	assert.Equal(t, "c", idx.Label(3))
}

func TestNewFactory_IndicesIndependientes(t *testing.T) {
	factory := cache.NewFactory(-1)

	a := factory()
	b := factory()
	a.Put(1, "Centro")

	assert.Equal(t, "Centro", a.Label(1))
	assert.Equal(t, "#1", b.Label(1))
}
