package listing

import (
	"context"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// FetchFunc obtiene una colección del backend, opcionalmente filtrada por q.
type FetchFunc[E any] func(ctx context.Context, q string) ([]E, error)

// Lister carga una colección y la convierte en filas de tabla. El orden es el del
// backend; no hay paginación, reintentos ni ordenamiento local.
type Lister[E any, R any] struct {
	fetch     FetchFunc[E]
	toRow     func(E) R
	emptyText string
	log       *logger.Logger
}

// NewLister construye un lister. emptyText es el texto de la fila informativa de colección vacía.
func NewLister[E any, R any](fetch FetchFunc[E], toRow func(E) R, emptyText string, log *logger.Logger) *Lister[E, R] {
	if log == nil {
		log = logger.Nop()
	}
	return &Lister[E, R]{fetch: fetch, toRow: toRow, emptyText: emptyText, log: log}
}

// List devuelve una fila por elemento, o una única fila vacía/de error.
func (l *Lister[E, R]) List(ctx context.Context, q string) dto.TableView[R] {
	items, err := l.fetch(ctx, q)
	if err != nil {
		l.log.Warn().Err(err).Str("q", q).Msg("no se pudo cargar la colección")
		return ErrorTable[R](err)
	}
	return Table(items, l.toRow, l.emptyText)
}

// Table arma la vista a partir de una colección ya obtenida.
func Table[E any, R any](items []E, toRow func(E) R, emptyText string) dto.TableView[R] {
	if len(items) == 0 {
		return dto.TableView[R]{Placeholder: &dto.Placeholder{Kind: dto.PlaceholderEmpty, Message: emptyText}}
	}
	rows := make([]R, len(items))
	for i, it := range items {
		rows[i] = toRow(it)
	}
	return dto.TableView[R]{Rows: rows}
}

// ErrorTable tabla con la única fila de error.
func ErrorTable[R any](err error) dto.TableView[R] {
	return dto.TableView[R]{Placeholder: &dto.Placeholder{Kind: dto.PlaceholderError, Message: UserMessage(err)}}
}
