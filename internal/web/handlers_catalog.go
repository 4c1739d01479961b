package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Manuelsilva1/Library/internal/catalog/domain"
)

type bookPayload struct {
	Title         string          `json:"title" binding:"required"`
	Author        string          `json:"author" binding:"required"`
	ISBN          string          `json:"isbn,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Stock         *int            `json:"stock,omitempty"`
	Category      string          `json:"category,omitempty"`
	CoverImageURL string          `json:"coverImageUrl,omitempty"`
	Description   string          `json:"description,omitempty"`
}

func (p bookPayload) toDomain() domain.Book {
	return domain.Book{
		Title:         p.Title,
		Author:        p.Author,
		ISBN:          p.ISBN,
		Price:         p.Price,
		Stock:         p.Stock,
		Category:      p.Category,
		CoverImageURL: p.CoverImageURL,
		Description:   p.Description,
	}
}

func (s *Server) listBooks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "8"))

	f := domain.Filters{
		Category:   c.Query("category"),
		Author:     c.Query("author"),
		SearchTerm: c.Query("searchTerm"),
	}
	if v := c.Query("priceMin"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			f.PriceMin = d
		}
	}
	if v := c.Query("priceMax"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			f.PriceMax = d
		}
	}

	result, err := s.books.ListBooks(c.Request.Context(), f, page, size)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) getBook(c *gin.Context) {
	book, err := s.books.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (s *Server) listCategories(c *gin.Context) {
	cats, err := s.books.Categories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (s *Server) createBook(c *gin.Context) {
	var p bookPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
		return
	}

	created, err := s.books.CreateBook(c.Request.Context(), p.toDomain())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateBook(c *gin.Context) {
	var p bookPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
		return
	}

	updated, err := s.books.UpdateBook(c.Request.Context(), c.Param("id"), p.toDomain())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteBook(c *gin.Context) {
	if err := s.books.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
