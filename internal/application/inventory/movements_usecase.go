package inventory

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/application/views"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// MovementsUseCase actividad de inventario, en el orden del backend (más reciente primero).
type MovementsUseCase struct {
	mov       ports.MovementGateway
	inv       ports.InventoryGateway
	users     ports.UserGateway
	newLabels ports.LabelStoreFactory
	log       *logger.Logger
}

func NewMovementsUseCase(mov ports.MovementGateway, inv ports.InventoryGateway, users ports.UserGateway, newLabels ports.LabelStoreFactory, log *logger.Logger) *MovementsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MovementsUseCase{mov: mov, inv: inv, users: users, newLabels: newLabels, log: log.Component("movimientos")}
}

// Table movimientos con el libro/punto de venta y el usuario resueltos por nombre.
// Los índices de etiquetas se cargan en paralelo; si fallan se muestran ids.
func (uc *MovementsUseCase) Table(ctx context.Context, q string) dto.TableView[views.MovementRow] {
	inventarios := uc.newLabels()
	usuarios := uc.newLabels()

	var (
		movements []entity.StockMovement
		movErr    error
		records   []entity.InventoryRecord
		people    []entity.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		movements, movErr = uc.mov.ListMovements(gctx, q)
		return movErr
	})
	g.Go(func() error {
		var err error
		if records, err = uc.inv.ListInventory(gctx, ""); err != nil {
			uc.log.Warn().Err(err).Msg("etiquetas de inventario no disponibles")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if people, err = uc.users.ListUsers(gctx, ""); err != nil {
			uc.log.Warn().Err(err).Msg("etiquetas de usuario no disponibles")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo cargar la actividad")
		return listing.ErrorTable[views.MovementRow](err)
	}

	ports.FillLabels(inventarios, records, func(r entity.InventoryRecord) (int, string) {
		return r.ID, fmt.Sprintf("%s @ %s", r.Libro, r.PuntoVenta)
	})
	ports.FillLabels(usuarios, people, func(u entity.User) (int, string) { return u.ID, u.Nombre })
	return listing.Table(movements, views.MovementRowWith(inventarios, usuarios), "No hay movimientos registrados.")
}
