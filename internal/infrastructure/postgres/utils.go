package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgCode devuelve el SQLSTATE de un error de PostgreSQL, o "" si no lo es.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUndefinedTable verifica si falta la tabla (42P01), p. ej. bitácora sin migrar.
func isUndefinedTable(err error) bool { return pgCode(err) == "42P01" }

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool { return pgCode(err) == "23505" }
