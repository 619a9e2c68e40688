package libreria

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/domain"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa todos los puertos.
var _ ports.Backend = (*Client)(nil)

// maxBodyBytes límite de lectura de cualquier respuesta del backend.
const maxBodyBytes = 1 << 20

// Client adaptador REST contra el backend FastAPI de la librería.
// Usa net/http de la librería estándar; no hay SDK del backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// Option ajusta el cliente al construirlo.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests, transportes personalizados).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger registra cada llamada en nivel debug.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l.Component("libreria") }
}

// New construye el cliente. timeout 0 = sin límite por petición (el contexto sigue mandando).
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL devuelve la URL base normalizada.
func (c *Client) BaseURL() string { return c.baseURL }

// do ejecuta la petición y decodifica la respuesta en out (si no es nil).
// Traduce los fallos a la taxonomía de domain:
//   - no se llegó al servidor -> domain.ErrNetwork
//   - status fuera de 2xx      -> *domain.APIError con el "detail" del backend
//   - cuerpo no decodificable  -> domain.ErrMalformedResponse
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("libreria: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("libreria: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Dur("duration", time.Since(start)).Err(err).Msg("backend inalcanzable")
		return fmt.Errorf("%w: %s %s: %w", domain.ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %s %s: leer respuesta: %w", domain.ErrNetwork, method, path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("backend")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.APIError{Status: resp.StatusCode, Detail: parseDetail(raw)}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrMalformedResponse, method, path, err)
	}
	return nil
}

// parseDetail extrae el mensaje de error del backend. FastAPI envía "detail" como
// string o, en errores de validación (422), como lista de objetos con "msg".
func parseDetail(body []byte) string {
	var envelope struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if len(envelope.Detail) == 0 || string(envelope.Detail) == "null" {
		return envelope.Message
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil && len(items) > 0 {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg == "" {
				continue
			}
			if field := lastLoc(it.Loc); field != "" {
				msgs = append(msgs, field+": "+it.Msg)
			} else {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return string(envelope.Detail)
}

// lastLoc nombre del campo en un "loc" de FastAPI, p.ej. ["body","precio"] -> "precio".
func lastLoc(loc []any) string {
	if len(loc) < 2 {
		return ""
	}
	if s, ok := loc[len(loc)-1].(string); ok {
		return s
	}
	return ""
}

func searchQuery(q string) url.Values {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	return url.Values{"q": {q}}
}

func itemPath(collection string, id int) string {
	return fmt.Sprintf("%s%d", collection, id)
}

// getList GET de una colección; cada elemento se valida contra su esquema.
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var out []T
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if err := dto.Validate(out[i]); err != nil {
			return nil, fmt.Errorf("%w: GET %s: elemento %d: %v", domain.ErrMalformedResponse, path, i, err)
		}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// send ejecuta method y valida el objeto devuelto.
func send[T any](ctx context.Context, c *Client, method, path string, in any) (T, error) {
	var out T
	if err := c.do(ctx, method, path, nil, in, &out); err != nil {
		return out, err
	}
	if err := dto.Validate(out); err != nil {
		return out, fmt.Errorf("%w: %s %s: %v", domain.ErrMalformedResponse, method, path, err)
	}
	return out, nil
}

func mapList[R any, E any](items []R, conv func(R) E) []E {
	out := make([]E, len(items))
	for i, it := range items {
		out[i] = conv(it)
	}
	return out
}
