package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jhoicas/libreria-consola/internal/application/ports"
)

// DefaultLabelSize tamaño usado cuando la configuración no indica uno válido.
const DefaultLabelSize = 256

// LabelIndex tabla id -> nombre para mostrar referencias (punto de venta, libro, usuario)
// sin volver a consultar el backend. Se reconstruye en cada carga de página y no se
// invalida durante la misma; si supera su tamaño descarta los menos usados.
type LabelIndex struct {
	entries *lru.Cache[int, string]
}

// NewLabelIndex crea un índice vacío con capacidad size.
func NewLabelIndex(size int) (*LabelIndex, error) {
	if size <= 0 {
		size = DefaultLabelSize
	}
	c, err := lru.New[int, string](size)
	if err != nil {
		return nil, fmt.Errorf("cache: crear índice de etiquetas: %w", err)
	}
	return &LabelIndex{entries: c}, nil
}

// Put agrega o reemplaza una etiqueta.
func (i *LabelIndex) Put(id int, label string) {
	i.entries.Add(id, label)
}

// Label devuelve la etiqueta de id o "#id" si no está en el índice.
func (i *LabelIndex) Label(id int) string {
	if l, ok := i.entries.Get(id); ok {
		return l
	}
	return fmt.Sprintf("#%d", id)
}

// NewFactory constructor de índices de tamaño fijo para inyectar en los casos de uso.
func NewFactory(size int) ports.LabelStoreFactory {
	return func() ports.LabelStore {
		idx, err := NewLabelIndex(size)
		if err != nil {
			idx, _ = NewLabelIndex(DefaultLabelSize)
		}
		return idx
	}
}
