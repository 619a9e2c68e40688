package views

import (
	"fmt"

	"github.com/jhoicas/libreria-consola/internal/domain/entity"
	"github.com/jhoicas/libreria-consola/internal/domain/inventory"
)

// BookRow fila de la tabla de libros.
type BookRow struct {
	ID         int
	Nombre     string
	Precio     string
	StockTotal string
}

func BookRowFrom(b entity.Book) BookRow {
	return BookRow{ID: b.ID, Nombre: b.Nombre, Precio: Money(b.Precio), StockTotal: Int(b.StockTotal)}
}

// MaterialRow fila de la tabla de materias primas. Low marca stock actual < mínimo.
type MaterialRow struct {
	ID          int
	Nombre      string
	Unidad      string
	StockActual string
	StockMinimo string
	Low         bool
}

func MaterialRowFrom(m entity.RawMaterial) MaterialRow {
	return MaterialRow{
		ID:          m.ID,
		Nombre:      m.Nombre,
		Unidad:      orDash(m.Unidad),
		StockActual: Int(m.StockActual),
		StockMinimo: Int(m.StockMinimo),
		Low:         inventory.IsLow(m),
	}
}

var posTypeLabels = map[string]string{
	entity.PointOfSaleTienda: "Tienda",
	entity.PointOfSaleMetro:  "Metro",
	entity.PointOfSaleOnline: "Online",
}

// PointOfSaleRow fila de la tabla de puntos de venta.
type PointOfSaleRow struct {
	ID        int
	Nombre    string
	Ubicacion string
	Tipo      string
}

func PointOfSaleRowFrom(p entity.PointOfSale) PointOfSaleRow {
	tipo, ok := posTypeLabels[p.Tipo]
	if !ok {
		tipo = orDash(p.Tipo)
	}
	return PointOfSaleRow{ID: p.ID, Nombre: p.Nombre, Ubicacion: orDash(p.Ubicacion), Tipo: tipo}
}

// UserRow fila de la tabla de usuarios.
type UserRow struct {
	ID         int
	Nombre     string
	Email      string
	Rol        string
	PuntoVenta string
}

// UserRowWith devuelve el mapeo de usuarios que resuelve el nombre del punto de venta con labels.
func UserRowWith(labels Labeler) func(entity.User) UserRow {
	return func(u entity.User) UserRow {
		pv := dash
		if u.PuntoVentaID != nil && *u.PuntoVentaID > 0 {
			pv = labels.Label(*u.PuntoVentaID)
		}
		rol := "Vendedor"
		if u.Rol == entity.RoleAdmin {
			rol = "Administrador"
		}
		return UserRow{ID: u.ID, Nombre: u.Nombre, Email: orDash(u.Email), Rol: rol, PuntoVenta: pv}
	}
}

// InventoryRow fila de inventario por punto de venta.
type InventoryRow struct {
	ID          int
	Libro       string
	PuntoVenta  string
	Stock       int
	StockText   string
	StockMinimo string
	Precio      string
	Low         bool
	Status      string // normal | bajo | agotado
	StatusLabel string
	CanSell     bool
}

var statusNames = map[inventory.StockStatus][2]string{
	inventory.StockNormal:  {"normal", "Normal"},
	inventory.StockBajo:    {"bajo", "Bajo"},
	inventory.StockAgotado: {"agotado", "Agotado"},
}

func InventoryRowFrom(r entity.InventoryRecord) InventoryRow {
	st := statusNames[inventory.Classify(r.Stock)]
	return InventoryRow{
		ID:          r.ID,
		Libro:       r.Libro,
		PuntoVenta:  orDash(r.PuntoVenta),
		Stock:       r.Stock,
		StockText:   Int(r.Stock),
		StockMinimo: OptionalInt(r.StockMinimo),
		Precio:      Money(r.Precio),
		Low:         inventory.IsLow(r),
		Status:      st[0],
		StatusLabel: st[1],
		CanSell:     r.Stock > 0,
	}
}

// MovementRow fila de la actividad de inventario.
type MovementRow struct {
	ID            int
	Fecha         string
	Tipo          string
	TipoLabel     string
	Cantidad      string
	Inventario    string
	Usuario       string
	Observaciones string
}

// MovementRowWith resuelve el inventario (libro @ punto de venta) y el usuario con sus índices.
func MovementRowWith(inventarios, usuarios Labeler) func(entity.StockMovement) MovementRow {
	return func(m entity.StockMovement) MovementRow {
		usuario := dash
		if m.UsuarioID != nil {
			usuario = usuarios.Label(*m.UsuarioID)
		}
		return MovementRow{
			ID:            m.ID,
			Fecha:         DateTime(m.FechaMovimiento),
			Tipo:          string(m.Tipo),
			TipoLabel:     m.Tipo.Label(),
			Cantidad:      Int(m.Cantidad),
			Inventario:    inventarios.Label(m.InventarioID),
			Usuario:       usuario,
			Observaciones: orDash(m.Observaciones),
		}
	}
}

// AlertRow fila de alerta de stock bajo; sirve igual para libros y materias primas.
type AlertRow struct {
	Tipo     string // "Libro" | "Materia prima"
	Nombre   string
	Detalle  string // punto de venta o unidad
	Actual   int
	Minimo   int
	Faltante int
}

func BookAlertRow(r entity.InventoryRecord) AlertRow {
	m, _ := r.MinimumStock()
	return AlertRow{Tipo: "Libro", Nombre: r.Libro, Detalle: orDash(r.PuntoVenta), Actual: r.Stock, Minimo: m, Faltante: m - r.Stock}
}

func MaterialAlertRow(mp entity.RawMaterial) AlertRow {
	return AlertRow{
		Tipo:     "Materia prima",
		Nombre:   mp.Nombre,
		Detalle:  orDash(mp.Unidad),
		Actual:   mp.StockActual,
		Minimo:   mp.StockMinimo,
		Faltante: mp.StockMinimo - mp.StockActual,
	}
}

// Option opción de un selector (<select>).
type Option struct {
	Value    int
	Label    string
	Selected bool
}

// PointOfSaleOptions opciones para el selector de punto de venta.
func PointOfSaleOptions(items []entity.PointOfSale, selected int) []Option {
	out := make([]Option, len(items))
	for i, p := range items {
		out[i] = Option{Value: p.ID, Label: p.Nombre, Selected: p.ID == selected}
	}
	return out
}

// BookOptions opciones para el selector de libro.
func BookOptions(items []entity.Book) []Option {
	out := make([]Option, len(items))
	for i, b := range items {
		out[i] = Option{Value: b.ID, Label: b.Nombre}
	}
	return out
}

var actionLabels = map[string]string{
	"crear":      "Creación",
	"actualizar": "Actualización",
	"eliminar":   "Eliminación",
	"ajustar":    "Ajuste de stock",
	"vender":     "Venta",
	"entrada":    "Entrada",
}

// AuditRow fila de la bitácora de la consola.
type AuditRow struct {
	Fecha   string
	Usuario string
	Accion  string
	Recurso string
	Delta   string
	Monto   string
	Detalle string
}

// AuditRowWith resuelve el nombre del usuario con labels.
func AuditRowWith(usuarios Labeler) func(entity.AuditEntry) AuditRow {
	return func(e entity.AuditEntry) AuditRow {
		accion, ok := actionLabels[e.Action]
		if !ok {
			accion = e.Action
		}
		return AuditRow{
			Fecha:   DateTime(e.CreatedAt),
			Usuario: usuarios.Label(e.UserID),
			Accion:  accion,
			Recurso: fmt.Sprintf("%s #%d", e.Resource, e.ResourceID),
			Delta:   OptionalInt(e.Delta),
			Monto:   Money(e.Amount),
			Detalle: orDash(e.Detail),
		}
	}
}

// MaterialOptions opciones para el selector de materia prima.
func MaterialOptions(items []entity.RawMaterial) []Option {
	out := make([]Option, len(items))
	for i, m := range items {
		out[i] = Option{Value: m.ID, Label: m.Nombre}
	}
	return out
}
