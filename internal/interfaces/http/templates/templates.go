// Package templates contiene las vistas HTML de la consola (htmx), embebidas en el binario.
package templates

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
)

//go:embed layouts/*.html partials/*.html *.html
var files embed.FS

// Layout plantilla base de las páginas completas.
const Layout = "layouts/main"

// NewEngine construye el motor de plantillas sobre los archivos embebidos.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.AddFunc("dict", dict)
	engine.AddFunc("notifyClass", notifyClass)
	return engine
}

// dict arma un mapa para pasar varios valores a un {{template}}.
func dict(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			m[k] = kv[i+1]
		}
	}
	return m
}

func notifyClass(level dto.NotificationLevel) string {
	switch level {
	case dto.NotifySuccess:
		return "notice notice-success"
	case dto.NotifyWarning:
		return "notice notice-warning"
	default:
		return "notice notice-error"
	}
}
