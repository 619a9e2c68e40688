package listing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// Mutation una escritura contra el backend. Run devuelve el id del recurso afectado.
type Mutation struct {
	Success string
	Audit   entity.AuditEntry // Action vacío = no se registra en la bitácora
	Run     func(ctx context.Context) (int, error)
}

// Submitter ejecuta mutaciones y, solo si terminan bien, recarga la tabla dependiente.
// Un fallo nunca recarga ni notifica éxito; no hay reintentos.
type Submitter[R any] struct {
	refresh func(ctx context.Context) dto.TableView[R]
	audit   ports.AuditRecorder
	log     *logger.Logger
}

// NewSubmitter construye un submitter. refresh puede ser nil si no hay tabla dependiente;
// audit puede ser nil si la bitácora está deshabilitada.
func NewSubmitter[R any](refresh func(ctx context.Context) dto.TableView[R], audit ports.AuditRecorder, log *logger.Logger) *Submitter[R] {
	if log == nil {
		log = logger.Nop()
	}
	return &Submitter[R]{refresh: refresh, audit: audit, log: log}
}

// Submit ejecuta m y arma el resultado para el usuario.
func (s *Submitter[R]) Submit(ctx context.Context, m Mutation) dto.Outcome[R] {
	id, err := m.Run(ctx)
	if err != nil {
		s.log.Info().Err(err).Str("action", m.Audit.Action).Str("resource", m.Audit.Resource).Msg("mutación rechazada")
		return dto.Outcome[R]{Notification: dto.Notification{Level: dto.NotifyError, Message: UserMessage(err)}}
	}

	s.record(ctx, m.Audit, id)

	out := dto.Outcome[R]{Notification: dto.Notification{Level: dto.NotifySuccess, Message: m.Success}}
	if s.refresh != nil {
		t := s.refresh(ctx)
		out.Table = &t
	}
	return out
}

func (s *Submitter[R]) record(ctx context.Context, e entity.AuditEntry, id int) {
	if s.audit == nil || e.Action == "" {
		return
	}
	e.ID = uuid.New()
	if e.ResourceID == 0 {
		e.ResourceID = id
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if err := s.audit.Record(ctx, e); err != nil {
		// La mutación ya quedó hecha en el backend; la bitácora no la revierte.
		s.log.Warn().Err(err).Str("action", e.Action).Msg("no se pudo registrar en la bitácora")
	}
}
