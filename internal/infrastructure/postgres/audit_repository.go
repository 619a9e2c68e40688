package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

var (
	_ ports.AuditRecorder = (*AuditRepo)(nil)
	_ ports.AuditLog      = (*AuditRepo)(nil)
)

// ErrAuditSchema la tabla de la bitácora no existe; correr EnsureSchema.
var ErrAuditSchema = errors.New("bitácora sin esquema (console_audit)")

const auditSchema = `
CREATE TABLE IF NOT EXISTS console_audit (
    id          UUID PRIMARY KEY,
    user_id     INTEGER       NOT NULL,
    action      TEXT          NOT NULL,
    resource    TEXT          NOT NULL,
    resource_id INTEGER       NOT NULL,
    delta       INTEGER,
    amount      NUMERIC(14,2),
    detail      TEXT          NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ   NOT NULL DEFAULT now()
)`

const auditIndex = `CREATE INDEX IF NOT EXISTS console_audit_created_at_idx ON console_audit (created_at DESC)`

// AuditRepo bitácora de acciones de la consola sobre PostgreSQL (usable con pool o tx).
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// EnsureSchema crea la tabla y su índice en una sola transacción.
func EnsureSchema(ctx context.Context, tx *TxRunner) error {
	return tx.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, auditSchema); err != nil {
			return fmt.Errorf("crear console_audit: %w", err)
		}
		if _, err := q.Exec(ctx, auditIndex); err != nil {
			return fmt.Errorf("crear índice de console_audit: %w", err)
		}
		return nil
	})
}

// Record persiste una entrada de la bitácora.
func (r *AuditRepo) Record(ctx context.Context, e entity.AuditEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	query := `
		INSERT INTO console_audit (id, user_id, action, resource, resource_id, delta, amount, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.UserID, e.Action, e.Resource, e.ResourceID,
		e.Delta, e.Amount, e.Detail, e.CreatedAt,
	)
	switch {
	case err == nil:
		return nil
	case isUndefinedTable(err):
		return ErrAuditSchema
	case isUniqueViolation(err):
		return fmt.Errorf("registrar en bitácora: id %s duplicado: %w", e.ID, err)
	default:
		return fmt.Errorf("registrar en bitácora: %w", err)
	}
}

// Recent devuelve las últimas entradas, la más reciente primero.
func (r *AuditRepo) Recent(ctx context.Context, limit int) ([]entity.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, user_id, action, resource, resource_id, delta, amount, detail, created_at
		FROM console_audit ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, ErrAuditSchema
		}
		return nil, fmt.Errorf("leer bitácora: %w", err)
	}
	defer rows.Close()

	out := []entity.AuditEntry{}
	for rows.Next() {
		var e entity.AuditEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Action, &e.Resource, &e.ResourceID,
			&e.Delta, &e.Amount, &e.Detail, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("leer bitácora: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leer bitácora: %w", err)
	}
	return out, nil
}
