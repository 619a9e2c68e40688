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

const resourceLibros = "libros"

// BookUseCase CRUD de libros contra el backend.
type BookUseCase struct {
	books ports.BookGateway
	audit ports.AuditRecorder
	log   *logger.Logger
}

func NewBookUseCase(books ports.BookGateway, audit ports.AuditRecorder, log *logger.Logger) *BookUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &BookUseCase{books: books, audit: audit, log: log.Component("libros")}
}

// Table listado de libros filtrado por nombre.
func (uc *BookUseCase) Table(ctx context.Context, q string) dto.TableView[views.BookRow] {
	return listing.NewLister(uc.books.ListBooks, views.BookRowFrom, "No hay libros registrados.", uc.log).List(ctx, q)
}

// All libros sin filtro (selectores, exportaciones).
func (uc *BookUseCase) All(ctx context.Context) ([]entity.Book, error) {
	return uc.books.ListBooks(ctx, "")
}

// Get carga un libro para el formulario de edición.
func (uc *BookUseCase) Get(ctx context.Context, id int) (entity.Book, error) {
	return uc.books.GetBook(ctx, id)
}

func (uc *BookUseCase) submitter() *listing.Submitter[views.BookRow] {
	return listing.NewSubmitter(func(ctx context.Context) dto.TableView[views.BookRow] { return uc.Table(ctx, "") }, uc.audit, uc.log)
}

// Create crea un libro. Sin materias primas no se envía nada al backend.
func (uc *BookUseCase) Create(ctx context.Context, sess entity.Session, req dto.CreateBookRequest) dto.Outcome[views.BookRow] {
	return uc.submitter().Submit(ctx, listing.Mutation{
		Success: "Libro creado correctamente.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "crear", Resource: resourceLibros, Amount: req.Precio, Detail: req.Nombre},
		Run: func(ctx context.Context) (int, error) {
			if err := dto.Validate(req); err != nil {
				return 0, err
			}
			b, err := uc.books.CreateBook(ctx, req)
			return b.ID, err
		},
	})
}

// Update aplica un PATCH parcial.
func (uc *BookUseCase) Update(ctx context.Context, sess entity.Session, id int, req dto.UpdateBookRequest) dto.Outcome[views.BookRow] {
	return uc.submitter().Submit(ctx, listing.Mutation{
		Success: "Libro actualizado correctamente.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "actualizar", Resource: resourceLibros, ResourceID: id, Amount: req.Precio},
		Run: func(ctx context.Context) (int, error) {
			if err := dto.Validate(req); err != nil {
				return 0, err
			}
			b, err := uc.books.UpdateBook(ctx, id, req)
			return b.ID, err
		},
	})
}

func (uc *BookUseCase) Delete(ctx context.Context, sess entity.Session, id int) dto.Outcome[views.BookRow] {
	return uc.submitter().Submit(ctx, listing.Mutation{
		Success: "Libro eliminado correctamente.",
		Audit:   entity.AuditEntry{UserID: sess.UserID, Action: "eliminar", Resource: resourceLibros, ResourceID: id},
		Run: func(ctx context.Context) (int, error) {
			return id, uc.books.DeleteBook(ctx, id)
		},
	})
}
