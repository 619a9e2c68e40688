package inventory

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/application/views"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	domaininv "github.com/jhoicas/libreria-consola/internal/domain/inventory"
)

// Alerts resultado del escaneo de stock bajo. Cada colección conserva su propio error:
// que falle una no oculta las alertas de la otra.
type Alerts struct {
	Books        []entity.InventoryRecord
	Materials    []entity.RawMaterial
	BooksErr     error
	MaterialsErr error
}

// Count total de alertas encontradas.
func (a Alerts) Count() int { return len(a.Books) + len(a.Materials) }

// AlertsUseCase escaneo de stock bajo. Libros (inventario por punto de venta) y materias
// primas se traen completos y se filtran con la misma regla: actual < mínimo.
type AlertsUseCase struct {
	inv ports.InventoryGateway
	mat ports.MaterialGateway
}

func NewAlertsUseCase(inv ports.InventoryGateway, mat ports.MaterialGateway) *AlertsUseCase {
	return &AlertsUseCase{inv: inv, mat: mat}
}

// Scan consulta ambas colecciones en paralelo y filtra en el orden devuelto por el backend.
func (uc *AlertsUseCase) Scan(ctx context.Context) Alerts {
	var out Alerts
	var g errgroup.Group
	g.Go(func() error {
		records, err := uc.inv.ListInventory(ctx, "")
		if err != nil {
			out.BooksErr = err
			return nil
		}
		out.Books = domaininv.LowStock(records)
		return nil
	})
	g.Go(func() error {
		materials, err := uc.mat.ListMaterials(ctx, "")
		if err != nil {
			out.MaterialsErr = err
			return nil
		}
		out.Materials = domaininv.LowStock(materials)
		return nil
	})
	_ = g.Wait()
	return out
}

// BookTable tabla de alertas de libros.
func (a Alerts) BookTable() dto.TableView[views.AlertRow] {
	if a.BooksErr != nil {
		return listing.ErrorTable[views.AlertRow](a.BooksErr)
	}
	return listing.Table(a.Books, views.BookAlertRow, "No hay alertas de stock.")
}

// MaterialTable tabla de alertas de materias primas.
func (a Alerts) MaterialTable() dto.TableView[views.AlertRow] {
	if a.MaterialsErr != nil {
		return listing.ErrorTable[views.AlertRow](a.MaterialsErr)
	}
	return listing.Table(a.Materials, views.MaterialAlertRow, "No hay alertas de materias primas.")
}

// Rows todas las alertas en una sola lista: primero libros, luego materias primas.
func (a Alerts) Rows() []views.AlertRow {
	rows := make([]views.AlertRow, 0, a.Count())
	for _, r := range a.Books {
		rows = append(rows, views.BookAlertRow(r))
	}
	for _, m := range a.Materials {
		rows = append(rows, views.MaterialAlertRow(m))
	}
	return rows
}
