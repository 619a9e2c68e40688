package catalog

import (
	"context"
	"errors"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/application/views"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

const resourceMaterias = "materias_primas"

// MaterialUseCase CRUD de materias primas y registro de entradas.
type MaterialUseCase struct {
	materials ports.MaterialGateway
	audit     ports.AuditRecorder
	log       *logger.Logger
}

func NewMaterialUseCase(materials ports.MaterialGateway, audit ports.AuditRecorder, log *logger.Logger) *MaterialUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MaterialUseCase{materials: materials, audit: audit, log: log.Component("materias_primas")}
}

func (uc *MaterialUseCase) Table(ctx context.Context, q string) dto.TableView[views.MaterialRow] {
	return listing.NewLister(uc.materials.ListMaterials, views.MaterialRowFrom, "No hay materias primas registradas.", uc.log).List(ctx, q)
}

// All materias primas sin filtro (formulario de libro nuevo).
func (uc *MaterialUseCase) All(ctx context.Context) ([]entity.RawMaterial, error) {
	return uc.materials.ListMaterials(ctx, "")
}

func (uc *MaterialUseCase) Get(ctx context.Context, id int) (entity.RawMaterial, error) {
	return uc.materials.GetMaterial(ctx, id)
}

func (uc *MaterialUseCase) submitter() *listing.Submitter[views.MaterialRow] {
	return listing.NewSubmitter(func(ctx context.Context) dto.TableView[views.MaterialRow] { return uc.Table(ctx, "") }, uc.audit, uc.log)
}

func (uc *MaterialUseCase) Create(ctx context.Context, sess entity.Session, req dto.CreateMaterialRequest) dto.Outcome[views.MaterialRow] {
	return uc.submitter().Submit(ctx, listing.Mutation{
		Success: "Materia prima creada.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "crear", Resource: resourceMaterias, Detail: req.Nombre},
		Run: func(ctx context.Context) (int, error) {
			if err := dto.Validate(req); err != nil {
				return 0, err
			}
			m, err := uc.materials.CreateMaterial(ctx, req)
			return m.ID, err
		},
	})
}

func (uc *MaterialUseCase) Update(ctx context.Context, sess entity.Session, id int, req dto.UpdateMaterialRequest) dto.Outcome[views.MaterialRow] {
	return uc.submitter().Submit(ctx, listing.Mutation{
		Success: "Materia prima editada correctamente.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "actualizar", Resource: resourceMaterias, ResourceID: id},
		Run: func(ctx context.Context) (int, error) {
			if err := dto.Validate(req); err != nil {
				return 0, err
			}
			m, err := uc.materials.UpdateMaterial(ctx, id, req)
			return m.ID, err
		},
	})
}

func (uc *MaterialUseCase) Delete(ctx context.Context, sess entity.Session, id int) dto.Outcome[views.MaterialRow] {
	return uc.submitter().Submit(ctx, listing.Mutation{
		Success: "Materia prima eliminada.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "eliminar", Resource: resourceMaterias, ResourceID: id},
		Run: func(ctx context.Context) (int, error) {
			return id, uc.materials.DeleteMaterial(ctx, id)
		},
	})
}

// RegisterEntry suma cantidad unidades a la materia prima id a nombre del usuario de la sesión.
func (uc *MaterialUseCase) RegisterEntry(ctx context.Context, sess entity.Session, id, cantidad int, observaciones *string) dto.Outcome[views.MaterialRow] {
	delta := cantidad
	return uc.submitter().Submit(ctx, listing.Mutation{
		Success: "Entrada registrada.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "entrada", Resource: resourceMaterias, ResourceID: id, Delta: &delta},
		Run: func(ctx context.Context) (int, error) {
			if sess.UserID <= 0 {
				return 0, &dto.FieldError{Field: "usuario_id", Message: "Tu sesión no identifica al usuario; vuelve a iniciar sesión."}
			}
			req := dto.MaterialEntryRequest{Cantidad: cantidad, UsuarioID: sess.UserID, Observaciones: observaciones}
			if err := dto.Validate(req); err != nil {
				var fe *dto.FieldError
				if errors.As(err, &fe) && fe.Field == "cantidad" {
					return 0, &dto.FieldError{Field: fe.Field, Message: "La cantidad debe ser un número positivo."}
				}
				return 0, err
			}
			m, err := uc.materials.RegisterMaterialEntry(ctx, id, req)
			return m.ID, err
		},
	})
}
