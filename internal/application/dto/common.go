package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// El backend declara los precios como números JSON; sin esto decimal los serializa como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// ListQuery filtro de texto libre para listados (?q=).
type ListQuery struct {
	Q string `query:"q"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BackendTime fecha tal como la serializa el backend: ISO-8601, con o sin zona horaria.
// Sin zona se interpreta en UTC.
type BackendTime struct {
	time.Time
}

var backendTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// UnmarshalJSON acepta null, RFC 3339 y fechas sin zona.
func (t *BackendTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range backendTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// MarshalJSON serializa en RFC 3339.
func (t BackendTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}
