package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/application/views"
	"github.com/jhoicas/libreria-consola/internal/domain"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/pkg/logger"
)

// Límites de lo que se acepta en un ajuste o una venta desde el formulario.
const (
	MaxAdjust   = 10000
	MaxSaleQty  = 1000
	resourceInv = "inventario-pv"
	resourceMov = "movimientos"
)

// StockUseCase inventario por punto de venta: listado, ajuste por delta, venta y alta.
// El backend hace la aritmética del stock; aquí solo se envía el delta y se recarga.
type StockUseCase struct {
	inv   ports.InventoryGateway
	mov   ports.MovementGateway
	audit ports.AuditRecorder
	log   *logger.Logger
	now   func() time.Time
}

// NewStockUseCase construye el caso de uso. audit puede ser nil.
func NewStockUseCase(inv ports.InventoryGateway, mov ports.MovementGateway, audit ports.AuditRecorder, log *logger.Logger) *StockUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockUseCase{inv: inv, mov: mov, audit: audit, log: log.Component("inventario"), now: time.Now}
}

// Records obtiene el inventario global (pointOfSaleID 0) o el de un punto de venta.
// El listado por punto de venta no acepta búsqueda en el backend: q se aplica aquí
// sobre el nombre del libro.
func (uc *StockUseCase) Records(ctx context.Context, pointOfSaleID int, q string) ([]entity.InventoryRecord, error) {
	if pointOfSaleID <= 0 {
		return uc.inv.ListInventory(ctx, q)
	}
	records, err := uc.inv.ListInventoryByPointOfSale(ctx, pointOfSaleID)
	if err != nil {
		return nil, err
	}
	return filterByBook(records, q), nil
}

func filterByBook(records []entity.InventoryRecord, q string) []entity.InventoryRecord {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return records
	}
	out := make([]entity.InventoryRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Libro), q) {
			out = append(out, r)
		}
	}
	return out
}

// Table tabla de inventario global o de un punto de venta.
func (uc *StockUseCase) Table(ctx context.Context, pointOfSaleID int, q string) dto.TableView[views.InventoryRow] {
	fetch := func(ctx context.Context, q string) ([]entity.InventoryRecord, error) {
		return uc.Records(ctx, pointOfSaleID, q)
	}
	return listing.NewLister(fetch, views.InventoryRowFrom, "No hay libros en el inventario.", uc.log).List(ctx, q)
}

func (uc *StockUseCase) submitter(pointOfSaleID int) *listing.Submitter[views.InventoryRow] {
	refresh := func(ctx context.Context) dto.TableView[views.InventoryRow] {
		return uc.Table(ctx, pointOfSaleID, "")
	}
	return listing.NewSubmitter(refresh, uc.audit, uc.log)
}

// Adjust aplica un delta con signo al registro inventoryID y recarga la tabla del alcance
// pointOfSaleID. Delta 0 se rechaza sin llamar al backend.
func (uc *StockUseCase) Adjust(ctx context.Context, sess entity.Session, inventoryID, delta, pointOfSaleID int) dto.Outcome[views.InventoryRow] {
	return uc.submitter(pointOfSaleID).Submit(ctx, listing.Mutation{
		Success: "Stock actualizado correctamente.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "ajustar", Resource: resourceInv, ResourceID: inventoryID, Delta: &delta},
		Run: func(ctx context.Context) (int, error) {
			return uc.adjust(ctx, inventoryID, delta)
		},
	})
}

// SellOne venta unitaria del vendedor: delta fijo -1 sobre su punto de venta.
// Si el stock mostrado ya es 0 no se envía nada; el backend sigue siendo quien decide.
func (uc *StockUseCase) SellOne(ctx context.Context, sess entity.Session, inventoryID, displayedStock int) dto.Outcome[views.InventoryRow] {
	delta := -1
	return uc.submitter(sess.PuntoVentaID).Submit(ctx, listing.Mutation{
		Success: "Venta registrada con éxito.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "vender", Resource: resourceInv, ResourceID: inventoryID, Delta: &delta},
		Run: func(ctx context.Context) (int, error) {
			if displayedStock <= 0 {
				return 0, domain.ErrOutOfStock
			}
			return uc.adjust(ctx, inventoryID, delta)
		},
	})
}

func (uc *StockUseCase) adjust(ctx context.Context, inventoryID, delta int) (int, error) {
	req := dto.AdjustStockRequest{Delta: delta}
	if err := dto.Validate(req); err != nil {
		return 0, err
	}
	rec, err := uc.inv.AdjustStock(ctx, inventoryID, req)
	if err != nil {
		return 0, err
	}
	uc.log.Debug().Int("inventario_id", inventoryID).Int("delta", delta).Int("stock", rec.Stock).Msg("stock ajustado")
	return rec.ID, nil
}

// Provision crea el registro de un libro en un punto de venta (stock mínimo obligatorio).
func (uc *StockUseCase) Provision(ctx context.Context, sess entity.Session, req dto.CreateInventoryRecordRequest) dto.Outcome[views.InventoryRow] {
	return uc.submitter(req.PuntoVentaID).Submit(ctx, listing.Mutation{
		Success: "Libro agregado correctamente al punto de venta.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "crear", Resource: resourceInv},
		Run: func(ctx context.Context) (int, error) {
			if err := dto.Validate(req); err != nil {
				return 0, err
			}
			rec, err := uc.inv.CreateInventoryRecord(ctx, req)
			return rec.ID, err
		},
	})
}

// RecordSale registra una venta de varias unidades como movimiento "venta" a nombre de la sesión.
func (uc *StockUseCase) RecordSale(ctx context.Context, sess entity.Session, inventoryID, cantidad, pointOfSaleID int) dto.Outcome[views.InventoryRow] {
	return uc.submitter(pointOfSaleID).Submit(ctx, listing.Mutation{
		Success: "Venta registrada.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "vender", Resource: resourceMov, ResourceID: inventoryID},
		Run: func(ctx context.Context) (int, error) {
			now := uc.now().UTC()
			req := dto.CreateMovementRequest{
				InventarioID:    inventoryID,
				Tipo:            string(entity.MovementVenta),
				Cantidad:        cantidad,
				FechaMovimiento: &now,
			}
			if sess.UserID > 0 {
				uid := sess.UserID
				req.UsuarioID = &uid
			}
			if err := dto.Validate(req); err != nil {
				return 0, err
			}
			mov, err := uc.mov.CreateMovement(ctx, req)
			return mov.ID, err
		},
	})
}
