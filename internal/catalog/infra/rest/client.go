// Package rest adapts the remote bookstore API's /books surface to the
// catalog ports.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/Manuelsilva1/Library/internal/catalog/app"
	"github.com/Manuelsilva1/Library/internal/catalog/domain"
	"github.com/Manuelsilva1/Library/pkg/rest"
)

type BookClient struct {
	api *rest.Client
}

func NewBookClient(api *rest.Client) *BookClient {
	return &BookClient{api: api}
}

// bookDTO matches the backend's book payload. Ids arrive as bare numbers
// from older backend versions and as strings from newer ones; json.Number
// absorbs both.
type bookDTO struct {
	ID            json.Number     `json:"id,omitempty"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	ISBN          string          `json:"isbn,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Stock         *int            `json:"stock,omitempty"`
	Category      string          `json:"category,omitempty"`
	CoverImageURL string          `json:"coverImageUrl,omitempty"`
	Description   string          `json:"description,omitempty"`
}

type pageDTO struct {
	Content       []bookDTO `json:"content"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
}

func (c *BookClient) List(ctx context.Context, f domain.Filters, page, size int) (domain.Page, error) {
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("size", fmt.Sprint(size))
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Author != "" {
		q.Set("author", f.Author)
	}
	if f.SearchTerm != "" {
		q.Set("searchTerm", f.SearchTerm)
	}
	if f.PriceMin.IsPositive() {
		q.Set("priceMin", f.PriceMin.String())
	}
	if f.PriceMax.IsPositive() {
		q.Set("priceMax", f.PriceMax.String())
	}

	var dto pageDTO
	if err := c.api.Do(ctx, http.MethodGet, "/books", q, nil, &dto); err != nil {
		return domain.Page{}, fmt.Errorf("list books: %w", err)
	}

	books := make([]domain.Book, 0, len(dto.Content))
	for _, b := range dto.Content {
		books = append(books, toDomain(b))
	}

	return domain.Page{
		Content:       books,
		Page:          dto.Page,
		Size:          dto.Size,
		TotalElements: dto.TotalElements,
		TotalPages:    dto.TotalPages,
	}, nil
}

func (c *BookClient) Get(ctx context.Context, id string) (domain.Book, error) {
	var dto bookDTO
	err := c.api.Do(ctx, http.MethodGet, "/books/"+url.PathEscape(id), nil, nil, &dto)
	if rest.StatusOf(err) == http.StatusNotFound {
		return domain.Book{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Book{}, fmt.Errorf("get book %s: %w", id, err)
	}
	return toDomain(dto), nil
}

func (c *BookClient) Categories(ctx context.Context) ([]string, error) {
	var cats []string
	if err := c.api.Do(ctx, http.MethodGet, "/categories", nil, nil, &cats); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (c *BookClient) Create(ctx context.Context, b domain.Book) (domain.Book, error) {
	var dto bookDTO
	if err := c.api.Do(ctx, http.MethodPost, "/books", nil, fromDomain(b), &dto); err != nil {
		return domain.Book{}, fmt.Errorf("create book: %w", err)
	}
	return toDomain(dto), nil
}

func (c *BookClient) Update(ctx context.Context, id string, b domain.Book) (domain.Book, error) {
	var dto bookDTO
	err := c.api.Do(ctx, http.MethodPut, "/books/"+url.PathEscape(id), nil, fromDomain(b), &dto)
	if rest.StatusOf(err) == http.StatusNotFound {
		return domain.Book{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Book{}, fmt.Errorf("update book %s: %w", id, err)
	}
	return toDomain(dto), nil
}

func (c *BookClient) Delete(ctx context.Context, id string) error {
	err := c.api.Do(ctx, http.MethodDelete, "/books/"+url.PathEscape(id), nil, nil, nil)
	if rest.StatusOf(err) == http.StatusNotFound {
		return app.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete book %s: %w", id, err)
	}
	return nil
}

func toDomain(dto bookDTO) domain.Book {
	return domain.Book{
		ID:            dto.ID.String(),
		Title:         dto.Title,
		Author:        dto.Author,
		ISBN:          dto.ISBN,
		Price:         dto.Price,
		Stock:         dto.Stock,
		Category:      dto.Category,
		CoverImageURL: dto.CoverImageURL,
		Description:   dto.Description,
	}
}

// fromDomain leaves the id out: it travels in the URL, and round-tripping it
// through json.Number would reject non-numeric ids.
func fromDomain(b domain.Book) bookDTO {
	return bookDTO{
		Title:         b.Title,
		Author:        b.Author,
		ISBN:          b.ISBN,
		Price:         b.Price,
		Stock:         b.Stock,
		Category:      b.Category,
		CoverImageURL: b.CoverImageURL,
		Description:   b.Description,
	}
}
