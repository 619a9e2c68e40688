package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/application/views"
	"github.com/jhoicas/libreria-consola/internal/domain"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

const resourcePuntosVenta = "puntos-venta"

// Mensajes específicos al eliminar un punto de venta.
const (
	MsgPointOfSaleInUse    = "No se puede eliminar este punto de venta porque tiene registros asociados (usuarios o inventario). Elimine primero los usuarios y el stock de este punto de venta."
	MsgPointOfSaleNotFound = "Punto de venta no encontrado."
)

// PointOfSaleUseCase CRUD de puntos de venta.
type PointOfSaleUseCase struct {
	pos   ports.PointOfSaleGateway
	audit ports.AuditRecorder
	log   *logger.Logger
}

func NewPointOfSaleUseCase(pos ports.PointOfSaleGateway, audit ports.AuditRecorder, log *logger.Logger) *PointOfSaleUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &PointOfSaleUseCase{pos: pos, audit: audit, log: log.Component("puntos_venta")}
}

func (uc *PointOfSaleUseCase) Table(ctx context.Context, q string) dto.TableView[views.PointOfSaleRow] {
	return listing.NewLister(uc.pos.ListPointsOfSale, views.PointOfSaleRowFrom, "No hay puntos de venta registrados.", uc.log).List(ctx, q)
}

// All puntos de venta sin filtro (selectores, índice de etiquetas).
func (uc *PointOfSaleUseCase) All(ctx context.Context) ([]entity.PointOfSale, error) {
	return uc.pos.ListPointsOfSale(ctx, "")
}

func (uc *PointOfSaleUseCase) Get(ctx context.Context, id int) (entity.PointOfSale, error) {
	return uc.pos.GetPointOfSale(ctx, id)
}

func (uc *PointOfSaleUseCase) submitter() *listing.Submitter[views.PointOfSaleRow] {
	return listing.NewSubmitter(func(ctx context.Context) dto.TableView[views.PointOfSaleRow] { return uc.Table(ctx, "") }, uc.audit, uc.log)
}

func (uc *PointOfSaleUseCase) Create(ctx context.Context, sess entity.Session, req dto.CreatePointOfSaleRequest) dto.Outcome[views.PointOfSaleRow] {
	return uc.submitter().Submit(ctx, listing.Mutation{
		Success: "Punto de venta creado correctamente.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "crear", Resource: resourcePuntosVenta, Detail: req.Nombre},
		Run: func(ctx context.Context) (int, error) {
			if err := dto.Validate(req); err != nil {
				return 0, err
			}
			p, err := uc.pos.CreatePointOfSale(ctx, req)
			return p.ID, err
		},
	})
}

func (uc *PointOfSaleUseCase) Update(ctx context.Context, sess entity.Session, id int, req dto.UpdatePointOfSaleRequest) dto.Outcome[views.PointOfSaleRow] {
	return uc.submitter().Submit(ctx, listing.Mutation{
		Success: "Punto de venta actualizado correctamente.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "actualizar", Resource: resourcePuntosVenta, ResourceID: id},
		Run: func(ctx context.Context) (int, error) {
			if err := dto.Validate(req); err != nil {
				return 0, err
			}
			p, err := uc.pos.UpdatePointOfSale(ctx, id, req)
			return p.ID, err
		},
	})
}

// Delete elimina un punto de venta. El backend rechaza la operación si tiene usuarios o
// inventario asociados; ese rechazo se explica al usuario.
func (uc *PointOfSaleUseCase) Delete(ctx context.Context, sess entity.Session, id int) dto.Outcome[views.PointOfSaleRow] {
	return uc.submitter().Submit(ctx, listing.Mutation{
		Success: "Punto de venta eliminado correctamente.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "eliminar", Resource: resourcePuntosVenta, ResourceID: id},
		Run: func(ctx context.Context) (int, error) {
			return id, explainDeleteError(uc.pos.DeletePointOfSale(ctx, id))
		},
	})
}

func explainDeleteError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	detail := strings.ToLower(apiErr.Detail)
	switch {
	case strings.Contains(detail, "foreign key"):
		return listing.Explain(err, MsgPointOfSaleInUse)
	case apiErr.Status == 404:
		return listing.Explain(err, MsgPointOfSaleNotFound)
	}
	return err
}
