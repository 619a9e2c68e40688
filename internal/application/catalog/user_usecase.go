package catalog

import (
	"context"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/application/views"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

const resourceUsuarios = "usuarios"

// UserUseCase CRUD de usuarios. La tabla muestra el nombre del punto de venta de cada
// vendedor usando un índice de etiquetas cargado en la misma consulta.
type UserUseCase struct {
	users     ports.UserGateway
	pos       ports.PointOfSaleGateway
	newLabels ports.LabelStoreFactory
	audit     ports.AuditRecorder
	log       *logger.Logger
}

func NewUserUseCase(users ports.UserGateway, pos ports.PointOfSaleGateway, newLabels ports.LabelStoreFactory, audit ports.AuditRecorder, log *logger.Logger) *UserUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UserUseCase{users: users, pos: pos, newLabels: newLabels, audit: audit, log: log.Component("usuarios")}
}

// Table listado de usuarios. Si los puntos de venta no cargan, se muestran por id.
func (uc *UserUseCase) Table(ctx context.Context, q string) dto.TableView[views.UserRow] {
	labels := uc.newLabels()
	if points, err := uc.pos.ListPointsOfSale(ctx, ""); err == nil {
		ports.FillLabels(labels, points, func(p entity.PointOfSale) (int, string) { return p.ID, p.Nombre })
	} else {
		uc.log.Warn().Err(err).Msg("no se pudieron cargar los puntos de venta para etiquetas")
	}
	return listing.NewLister(uc.users.ListUsers, views.UserRowWith(labels), "No hay usuarios registrados.", uc.log).List(ctx, q)
}

// All usuarios sin filtro.
func (uc *UserUseCase) All(ctx context.Context) ([]entity.User, error) {
	return uc.users.ListUsers(ctx, "")
}

func (uc *UserUseCase) Get(ctx context.Context, id int) (entity.User, error) {
	return uc.users.GetUser(ctx, id)
}

func (uc *UserUseCase) submitter() *listing.Submitter[views.UserRow] {
	return listing.NewSubmitter(func(ctx context.Context) dto.TableView[views.UserRow] { return uc.Table(ctx, "") }, uc.audit, uc.log)
}

func (uc *UserUseCase) Create(ctx context.Context, sess entity.Session, req dto.CreateUserRequest) dto.Outcome[views.UserRow] {
	if req.Rol == entity.RoleAdmin {
		req.PuntoVentaID = nil
	}
	return uc.submitter().Submit(ctx, listing.Mutation{
		Success: "Usuario creado correctamente.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "crear", Resource: resourceUsuarios, Detail: req.Email},
		Run: func(ctx context.Context) (int, error) {
			if err := dto.Validate(req); err != nil {
				return 0, err
			}
			u, err := uc.users.CreateUser(ctx, req)
			return u.ID, err
		},
	})
}

func (uc *UserUseCase) Update(ctx context.Context, sess entity.Session, id int, req dto.UpdateUserRequest) dto.Outcome[views.UserRow] {
	return uc.submitter().Submit(ctx, listing.Mutation{
		Success: "Usuario actualizado correctamente.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "actualizar", Resource: resourceUsuarios, ResourceID: id},
		Run: func(ctx context.Context) (int, error) {
			if err := dto.Validate(req); err != nil {
				return 0, err
			}
			u, err := uc.users.UpdateUser(ctx, id, req)
			return u.ID, err
		},
	})
}

func (uc *UserUseCase) Delete(ctx context.Context, sess entity.Session, id int) dto.Outcome[views.UserRow] {
	return uc.submitter().Submit(ctx, listing.Mutation{
		Success: "Usuario eliminado correctamente.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "eliminar", Resource: resourceUsuarios, ResourceID: id},
		Run: func(ctx context.Context) (int, error) {
			if id == sess.UserID {
				return 0, &dto.FieldError{Field: "id_usuario", Message: "No puedes eliminar tu propio usuario."}
			}
			return id, uc.users.DeleteUser(ctx, id)
		},
	})
}
