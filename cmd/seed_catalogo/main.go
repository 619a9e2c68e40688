// seed_catalogo carga materias primas en el backend a partir de un CSV exportado desde
// una hoja de cálculo (Latin-1, separador ';' o ',').
//
// Columnas: nombre;unidad;stock_minimo;stock_actual
//
// Uso: go run ./cmd/seed_catalogo [ruta/materias.csv]
// Por defecto busca materias_primas.csv en el directorio actual. Las materias que ya
// existen (mismo nombre, sin distinguir mayúsculas) se omiten.
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/infrastructure/libreria"
	"github.com/jhoicas/libreria-consola/pkg/config"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

func main() {
	csvPath := "materias_primas.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := parseMaterials(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	client := libreria.New(cfg.Backend.BaseURL, cfg.Backend.Timeout(), libreria.WithLogger(log))
	ctx := context.Background()

	existing, err := client.ListMaterials(ctx, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar materias primas: %v\n", err)
		os.Exit(1)
	}
	known := make(map[string]bool, len(existing))
	for _, m := range existing {
		known[strings.ToLower(m.Nombre)] = true
	}

	created, skipped, failed := 0, 0, 0
	for _, row := range rows {
		if known[strings.ToLower(row.req.Nombre)] {
			skipped++
			continue
		}
		if err := dto.Validate(row.req); err != nil {
			log.Warn().Int("linea", row.line).Str("nombre", row.req.Nombre).Err(err).Msg("fila inválida")
			failed++
			continue
		}
		mp, err := client.CreateMaterial(ctx, row.req)
		if err != nil {
			log.Error().Int("linea", row.line).Str("nombre", row.req.Nombre).Err(err).Msg("no se pudo crear")
			failed++
			continue
		}
		known[strings.ToLower(mp.Nombre)] = true
		created++
	}

	fmt.Printf("Materias primas: %d creadas, %d ya existían, %d con error\n", created, skipped, failed)
	if failed > 0 {
		os.Exit(2)
	}
}

type materialRow struct {
	line int
	req  dto.CreateMaterialRequest
}

// parseMaterials lee el CSV. Si el contenido no es UTF-8 válido se decodifica como
// Latin-1, que es lo que exportan las hojas de cálculo en español.
func parseMaterials(r io.Reader) ([]materialRow, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(src)
	cr.Comma = detectSeparator(raw)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []materialRow
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "nombre") {
			continue
		}
		req, err := toRequest(rec)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		out = append(out, materialRow{line: line, req: req})
	}
	return out, nil
}

func toRequest(rec []string) (dto.CreateMaterialRequest, error) {
	if len(rec) < 2 {
		return dto.CreateMaterialRequest{}, fmt.Errorf("se esperaban al menos nombre y unidad")
	}
	cell := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	minimo, err := optionalInt(cell(2))
	if err != nil {
		return dto.CreateMaterialRequest{}, fmt.Errorf("stock_minimo: %w", err)
	}
	actual, err := optionalInt(cell(3))
	if err != nil {
		return dto.CreateMaterialRequest{}, fmt.Errorf("stock_actual: %w", err)
	}
	return dto.CreateMaterialRequest{
		Nombre:      cell(0),
		Unidad:      cell(1),
		StockMinimo: minimo,
		StockActual: actual,
	}, nil
}

func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// detectSeparator ';' si la primera línea tiene más ';' que ','.
func detectSeparator(raw []byte) rune {
	first := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		first = raw[:i]
	}
	if bytes.Count(first, []byte(";")) > bytes.Count(first, []byte(",")) {
		return ';'
	}
	return ','
}
