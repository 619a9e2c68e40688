package analytics

import (
	"context"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/application/views"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// AuditPageSize entradas que muestra la bitácora.
const AuditPageSize = 100

// AuditUseCase lectura de la bitácora de la consola. Sin base de datos configurada
// (log nil) la página muestra que la bitácora está deshabilitada.
type AuditUseCase struct {
	audit     ports.AuditLog
	users     ports.UserGateway
	newLabels ports.LabelStoreFactory
	log       *logger.Logger
}

func NewAuditUseCase(audit ports.AuditLog, users ports.UserGateway, newLabels ports.LabelStoreFactory, log *logger.Logger) *AuditUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuditUseCase{audit: audit, users: users, newLabels: newLabels, log: log.Component("bitacora")}
}

// Enabled indica si hay bitácora.
func (uc *AuditUseCase) Enabled() bool { return uc.audit != nil }

// Table últimas acciones con el nombre del usuario resuelto; si /usuarios/ falla se muestran ids.
func (uc *AuditUseCase) Table(ctx context.Context) dto.TableView[views.AuditRow] {
	if uc.audit == nil {
		return dto.TableView[views.AuditRow]{
			Rows:        []views.AuditRow{},
			Placeholder: &dto.Placeholder{Kind: dto.PlaceholderEmpty, Message: "La bitácora está deshabilitada (sin base de datos)."},
		}
	}
	entries, err := uc.audit.Recent(ctx, AuditPageSize)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo leer la bitácora")
		return listing.ErrorTable[views.AuditRow](err)
	}

	usuarios := uc.newLabels()
	if users, err := uc.users.ListUsers(ctx, ""); err == nil {
		ports.FillLabels(usuarios, users, func(u entity.User) (int, string) { return u.ID, u.Nombre })
	} else {
		uc.log.Warn().Err(err).Msg("nombres de usuario no disponibles")
	}
	return listing.Table(entries, views.AuditRowWith(usuarios), "Aún no hay acciones registradas.")
}
