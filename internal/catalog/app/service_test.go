package app

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manuelsilva1/Library/internal/catalog/domain"
)

type fakeRepo struct {
	lastPage int
	lastSize int
}

func (f *fakeRepo) List(ctx context.Context, _ domain.Filters, page, size int) (domain.Page, error) {
	f.lastPage = page
	f.lastSize = size
	return domain.Page{Page: page, Size: size}, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (domain.Book, error) {
	return domain.Book{ID: id}, nil
}

func (f *fakeRepo) Categories(ctx context.Context) ([]string, error) { return nil, nil }

func (f *fakeRepo) Create(ctx context.Context, b domain.Book) (domain.Book, error) { return b, nil }

func (f *fakeRepo) Update(ctx context.Context, id string, b domain.Book) (domain.Book, error) {
	b.ID = id
	return b, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error { return nil }

func TestListBooksPaging(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	t.Run("defaults applied", func(t *testing.T) {
		_, err := svc.ListBooks(context.Background(), domain.Filters{}, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, repo.lastPage, "caller page 1 maps to remote page 0")
		assert.Equal(t, defaultPageSize, repo.lastSize)
	})

	t.Run("size clamped", func(t *testing.T) {
		_, err := svc.ListBooks(context.Background(), domain.Filters{}, 3, 1000)
		require.NoError(t, err)
		assert.Equal(t, 2, repo.lastPage)
		assert.Equal(t, maxPageSize, repo.lastSize)
	})

	t.Run("inverted price range -> invalid", func(t *testing.T) {
		f := domain.Filters{
			PriceMin: decimal.NewFromInt(50),
			PriceMax: decimal.NewFromInt(10),
		}
		_, err := svc.ListBooks(context.Background(), f, 1, 8)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestBookValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	valid := domain.Book{
		Title:  "El Aleph",
		Author: "Borges",
		Price:  decimal.NewFromFloat(12.50),
	}

	t.Run("blank title -> invalid", func(t *testing.T) {
		b := valid
		b.Title = "   "
		_, err := svc.CreateBook(context.Background(), b)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("non-positive price -> invalid", func(t *testing.T) {
		b := valid
		b.Price = decimal.Zero
		_, err := svc.CreateBook(context.Background(), b)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative stock -> invalid", func(t *testing.T) {
		b := valid
		neg := -1
		b.Stock = &neg
		_, err := svc.CreateBook(context.Background(), b)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("valid book passes through", func(t *testing.T) {
		got, err := svc.CreateBook(context.Background(), valid)
		require.NoError(t, err)
		assert.Equal(t, valid.Title, got.Title)
	})

	t.Run("update needs an id", func(t *testing.T) {
		_, err := svc.UpdateBook(context.Background(), " ", valid)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("get needs an id", func(t *testing.T) {
		_, err := svc.GetBook(context.Background(), "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
