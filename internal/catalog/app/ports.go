package app

import (
	"context"

	"github.com/Manuelsilva1/Library/internal/catalog/domain"
)

type BookRepo interface {
	List(ctx context.Context, f domain.Filters, page, size int) (domain.Page, error)
	Get(ctx context.Context, id string) (domain.Book, error)
	Categories(ctx context.Context) ([]string, error)

	Create(ctx context.Context, b domain.Book) (domain.Book, error)
	Update(ctx context.Context, id string, b domain.Book) (domain.Book, error)
	Delete(ctx context.Context, id string) error
}
