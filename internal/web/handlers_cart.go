package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartapp "github.com/Manuelsilva1/Library/internal/cart/app"
	cartdomain "github.com/Manuelsilva1/Library/internal/cart/domain"
)

// mountCart wires the cart operations onto a route group. The web session
// cart and the POS cart share the handler set; each group gets its own store.
func (s *Server) mountCart(g *gin.RouterGroup, store *cartapp.Store) {
	g.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Snapshot())
	})

	g.POST("/items", func(c *gin.Context) {
		var req struct {
			BookID   string `json:"bookId" binding:"required"`
			Quantity int    `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		book, err := s.books.GetBook(c.Request.Context(), req.BookID)
		if err != nil {
			fail(c, err)
			return
		}

		store.AddItem(cartdomain.Product{
			ID:            book.ID,
			Title:         book.Title,
			Author:        book.Author,
			CoverImageURL: book.CoverImageURL,
			UnitPrice:     book.Price,
			StockLimit:    book.StockLimit(),
		}, req.Quantity)

		c.JSON(http.StatusOK, store.Snapshot())
	})

	g.PUT("/items/:bookId", func(c *gin.Context) {
		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
			return
		}

		store.UpdateQuantity(c.Param("bookId"), req.Quantity)
		c.JSON(http.StatusOK, store.Snapshot())
	})

	g.DELETE("/items/:bookId", func(c *gin.Context) {
		store.RemoveItem(c.Param("bookId"))
		c.JSON(http.StatusOK, store.Snapshot())
	})

	g.DELETE("", func(c *gin.Context) {
		store.Clear()
		c.JSON(http.StatusOK, store.Snapshot())
	})
}
