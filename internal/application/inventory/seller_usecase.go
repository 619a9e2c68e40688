package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/application/listing"
	"github.com/jhoicas/libreria-consola/internal/application/ports"
	"github.com/jhoicas/libreria-consola/internal/application/views"
	"github.com/jhoicas/libreria-consola/internal/domain"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

// SellerPage vista del vendedor: su punto de venta y el inventario que tiene.
type SellerPage struct {
	PuntoVenta string
	Table      dto.TableView[views.InventoryRow]
}

// SellerUseCase arma la vista del vendedor a partir de la sesión.
type SellerUseCase struct {
	stock *StockUseCase
	pos   ports.PointOfSaleGateway
}

func NewSellerUseCase(stock *StockUseCase, pos ports.PointOfSaleGateway) *SellerUseCase {
	return &SellerUseCase{stock: stock, pos: pos}
}

// Page devuelve la vista del punto de venta de la sesión. Una sesión sin punto de venta es
// un error de configuración del usuario, no de red.
func (uc *SellerUseCase) Page(ctx context.Context, sess entity.Session) (SellerPage, error) {
	if !sess.HasPointOfSale() {
		return SellerPage{}, fmt.Errorf("%w: el usuario no tiene punto de venta asignado", domain.ErrForbidden)
	}
	page := SellerPage{PuntoVenta: fmt.Sprintf("Punto de venta #%d", sess.PuntoVentaID)}
	if p, err := uc.pos.GetPointOfSale(ctx, sess.PuntoVentaID); err == nil {
		page.PuntoVenta = p.Nombre
	} else {
		uc.stock.log.Warn().Err(err).Int("punto_venta_id", sess.PuntoVentaID).Msg("no se pudo cargar el punto de venta")
	}
	page.Table = uc.stock.Table(ctx, sess.PuntoVentaID, "")
	return page, nil
}

// Table recarga solo la tabla del vendedor.
func (uc *SellerUseCase) Table(ctx context.Context, sess entity.Session) dto.TableView[views.InventoryRow] {
	if !sess.HasPointOfSale() {
		return listing.ErrorTable[views.InventoryRow](domain.ErrForbidden)
	}
	return uc.stock.Table(ctx, sess.PuntoVentaID, "")
}
