package dto

// PlaceholderKind tipo de fila única que reemplaza al contenido de una tabla.
type PlaceholderKind string

const (
	PlaceholderEmpty PlaceholderKind = "empty"
	PlaceholderError PlaceholderKind = "error"
)

// Placeholder fila informativa: colección vacía o fallo al cargarla.
type Placeholder struct {
	Kind    PlaceholderKind
	Message string
}

// TableView contenido de una tabla: filas, o exactamente una fila informativa.
type TableView[R any] struct {
	Rows        []R
	Placeholder *Placeholder
}

// RowCount filas que se pintan (una sola si hay placeholder).
func (t TableView[R]) RowCount() int {
	if t.Placeholder != nil {
		return 1
	}
	return len(t.Rows)
}

// Failed indica si la tabla muestra la fila de error.
func (t TableView[R]) Failed() bool {
	return t.Placeholder != nil && t.Placeholder.Kind == PlaceholderError
}

// NotificationLevel severidad de un aviso al usuario.
type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
	NotifyWarning NotificationLevel = "warning"
)

// Notification aviso modal tras una acción del usuario.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// Outcome resultado de una mutación. Table solo viene cuando la mutación tuvo éxito
// y la tabla dependiente se recargó.
type Outcome[R any] struct {
	Notification Notification
	Table        *TableView[R]
}

// Succeeded indica si la mutación terminó bien.
func (o Outcome[R]) Succeeded() bool { return o.Notification.Level == NotifySuccess }
