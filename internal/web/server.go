// Package web is the storefront's HTTP surface: cart, catalog, checkout,
// orders, point of sale, auth and the admin book panel.
package web

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authapp "github.com/Manuelsilva1/Library/internal/auth/app"
	cartapp "github.com/Manuelsilva1/Library/internal/cart/app"
	catalogapp "github.com/Manuelsilva1/Library/internal/catalog/app"
	checkoutapp "github.com/Manuelsilva1/Library/internal/checkout/app"
	saleapp "github.com/Manuelsilva1/Library/internal/sale/app"
)

type Server struct {
	log *slog.Logger

	books    *catalogapp.Service
	cart     *cartapp.Store
	posCart  *cartapp.Store
	checkout *checkoutapp.Service
	sales    *saleapp.Service
	auth     *authapp.Service
}

func NewServer(
	log *slog.Logger,
	books *catalogapp.Service,
	cart, posCart *cartapp.Store,
	checkout *checkoutapp.Service,
	sales *saleapp.Service,
	auth *authapp.Service,
) *Server {
	return &Server{
		log:      log,
		books:    books,
		cart:     cart,
		posCart:  posCart,
		checkout: checkout,
		sales:    sales,
		auth:     auth,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/readyz", func(c *gin.Context) { c.Status(http.StatusOK) })

	api := r.Group("/api")

	// Public catalog browsing.
	api.GET("/books", s.listBooks)
	api.GET("/books/:id", s.getBook)
	api.GET("/categories", s.listCategories)

	// Session cart.
	s.mountCart(api.Group("/cart"), s.cart)

	// Auth.
	api.POST("/auth/login", s.login)
	api.POST("/auth/register", s.register)
	api.POST("/auth/logout", s.logout)
	api.GET("/auth/me", s.me)

	// Checkout and order viewing, behind the login gate.
	protected := api.Group("", s.requireAuth())
	protected.GET("/checkout/quote", s.quote)
	protected.POST("/checkout", s.placeOrder)
	protected.GET("/orders", s.listOrders)
	protected.GET("/orders/:id", s.getOrder)

	// Point of sale: its own cart plus sale registration.
	pos := api.Group("/pos", s.requireAuth())
	s.mountCart(pos.Group("/cart"), s.posCart)
	pos.POST("/sales", s.registerSale)

	// Admin book panel.
	admin := api.Group("/admin", s.requireAuth())
	admin.POST("/books", s.createBook)
	admin.PUT("/books/:id", s.updateBook)
	admin.DELETE("/books/:id", s.deleteBook)

	return r
}

// requireAuth redirects anonymous requests to the login page, preserving the
// originally intended destination for the post-login return.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.auth.IsAuthenticated() {
			c.Next()
			return
		}

		target := "/login?returnUrl=" + url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}

// requestLog tags every request with an id, echoed in X-Request-Id for
// correlating client reports with the log stream.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header("X-Request-Id", reqID)

		c.Next()
		s.log.Info("request",
			slog.String("request_id", reqID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
		)
	}
}
