package libreria

import (
	"context"
	"net/http"

	"github.com/jhoicas/libreria-consola/internal/application/dto"
	"github.com/jhoicas/libreria-consola/internal/domain/entity"
)

const librosPath = "/libros/"

func (c *Client) ListBooks(ctx context.Context, q string) ([]entity.Book, error) {
	items, err := getList[dto.BookResponse](ctx, c, librosPath, searchQuery(q))
	if err != nil {
		return nil, err
	}
	return mapList(items, dto.BookResponse.ToEntity), nil
}

func (c *Client) GetBook(ctx context.Context, id int) (entity.Book, error) {
	r, err := send[dto.BookResponse](ctx, c, http.MethodGet, itemPath(librosPath, id), nil)
	if err != nil {
		return entity.Book{}, err
	}
	return r.ToEntity(), nil
}

func (c *Client) CreateBook(ctx context.Context, req dto.CreateBookRequest) (entity.Book, error) {
	r, err := send[dto.BookResponse](ctx, c, http.MethodPost, librosPath, req)
	if err != nil {
		return entity.Book{}, err
	}
	return r.ToEntity(), nil
}

func (c *Client) UpdateBook(ctx context.Context, id int, req dto.UpdateBookRequest) (entity.Book, error) {
	r, err := send[dto.BookResponse](ctx, c, http.MethodPatch, itemPath(librosPath, id), req)
	if err != nil {
		return entity.Book{}, err
	}
	return r.ToEntity(), nil
}

func (c *Client) DeleteBook(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, itemPath(librosPath, id), nil, nil, nil)
}
