// Package analytics contiene el resumen del panel de administración.
package analytics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/inventory"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/application/views"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	domaininv "github.com/jhoicas/libreria-consola/internal/domain/inventory"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// Counter un indicador del panel. Si Err no está vacío la tarjeta muestra el mensaje.
type Counter struct {
	Value string
	Err   string
}

func counterOf(value string, err error) Counter {
	if err != nil {
		return Counter{Err: listing.UserMessage(err)}
	}
	return Counter{Value: value}
}

// Summary panel del administrador.
type Summary struct {
	PuntosVenta    Counter
	Usuarios       Counter
	StockTotal     Counter
	ValorEstimado  Counter
	Alerts         inventory.Alerts
	PuntosVentaTbl dto.TableView[views.PointOfSaleRow]
}

// DashboardUseCase arma el panel con cuatro consultas en paralelo:
//  1. GET /puntos-venta/     → contador + tabla
//  2. GET /usuarios/         → contador
//  3. GET /inventario-pv/    → stock total, valor y alertas de libros
//  4. GET /materias_primas/  → alertas de materias primas
//
// Cada sección conserva su propio error; una consulta fallida no vacía el resto.
type DashboardUseCase struct {
	src Source
	log *logger.Logger
}

// Source lecturas que necesita el panel; ports.Backend la satisface.
type Source interface {
	ListPointsOfSale(ctx context.Context, q string) ([]entity.PointOfSale, error)
	ListUsers(ctx context.Context, q string) ([]entity.User, error)
	ListInventory(ctx context.Context, q string) ([]entity.InventoryRecord, error)
	ListMaterials(ctx context.Context, q string) ([]entity.RawMaterial, error)
}

var _ Source = ports.Backend(nil)

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(src Source, log *logger.Logger) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{src: src, log: log.Component("dashboard")}
}

// GetSummary construye el panel.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) Summary {
	var (
		points              []entity.PointOfSale
		users               []entity.User
		records             []entity.InventoryRecord
		materials           []entity.RawMaterial
		posErr, usersErr    error
		invErr, materialErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		points, posErr = uc.src.ListPointsOfSale(ctx, "")
		return nil
	})
	g.Go(func() error {
		users, usersErr = uc.src.ListUsers(ctx, "")
		return nil
	})
	g.Go(func() error {
		records, invErr = uc.src.ListInventory(ctx, "")
		return nil
	})
	g.Go(func() error {
		materials, materialErr = uc.src.ListMaterials(ctx, "")
		return nil
	})
	_ = g.Wait()

	for _, err := range []error{posErr, usersErr, invErr, materialErr} {
		if err != nil {
			uc.log.Warn().Err(err).Msg("sección del panel sin datos")
		}
	}

	s := Summary{
		PuntosVenta: counterOf(views.Int(len(points)), posErr),
		Usuarios:    counterOf(views.Int(len(users)), usersErr),
		Alerts:      inventory.Alerts{BooksErr: invErr, MaterialsErr: materialErr},
	}
	if invErr == nil {
		s.StockTotal = Counter{Value: views.Int(domaininv.TotalStock(records))}
		s.ValorEstimado = Counter{Value: views.MoneyValue(domaininv.InventoryValue(records))}
		s.Alerts.Books = domaininv.LowStock(records)
	} else {
		s.StockTotal = counterOf("", invErr)
		s.ValorEstimado = counterOf("", invErr)
	}
	if materialErr == nil {
		s.Alerts.Materials = domaininv.LowStock(materials)
	}
	if posErr != nil {
		s.PuntosVentaTbl = listing.ErrorTable[views.PointOfSaleRow](posErr)
	} else {
		s.PuntosVentaTbl = listing.Table(points, views.PointOfSaleRowFrom, "No hay puntos de venta registrados.")
	}
	return s
}
