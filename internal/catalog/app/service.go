package app

import (
	"context"
	"errors"
	"strings"

	"github.com/Manuelsilva1/Library/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const (
	defaultPageSize = 8
	maxPageSize     = 100
)

type Service struct {
	repo BookRepo
}

func NewService(repo BookRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// ListBooks fetches one catalog page. Pages are 1-indexed for callers; the
// remote API counts from zero.
func (s *Service) ListBooks(ctx context.Context, f domain.Filters, page, size int) (domain.Page, error) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	if f.PriceMin.IsPositive() && f.PriceMax.IsPositive() && f.PriceMax.LessThan(f.PriceMin) {
		return domain.Page{}, ErrInvalidInput
	}

	return s.repo.List(ctx, f, page-1, size)
}

func (s *Service) GetBook(ctx context.Context, id string) (domain.Book, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Book{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *Service) CreateBook(ctx context.Context, b domain.Book) (domain.Book, error) {
	if err := validateBook(b); err != nil {
		return domain.Book{}, err
	}
	return s.repo.Create(ctx, b)
}

func (s *Service) UpdateBook(ctx context.Context, id string, b domain.Book) (domain.Book, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Book{}, ErrInvalidInput
	}
	if err := validateBook(b); err != nil {
		return domain.Book{}, err
	}
	return s.repo.Update(ctx, id, b)
}

func (s *Service) DeleteBook(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func validateBook(b domain.Book) error {
	if strings.TrimSpace(b.Title) == "" || strings.TrimSpace(b.Author) == "" {
		return ErrInvalidInput
	}
	if !b.Price.IsPositive() {
		return ErrInvalidInput
	}
	if b.Stock != nil && *b.Stock < 0 {
		return ErrInvalidInput
	}
	return nil
}
