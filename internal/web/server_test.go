package web

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authapp "github.com/Manuelsilva1/Library/internal/auth/app"
	authdomain "github.com/Manuelsilva1/Library/internal/auth/domain"
	cartapp "github.com/Manuelsilva1/Library/internal/cart/app"
	cartdomain "github.com/Manuelsilva1/Library/internal/cart/domain"
	catalogapp "github.com/Manuelsilva1/Library/internal/catalog/app"
	catalogdomain "github.com/Manuelsilva1/Library/internal/catalog/domain"
	checkoutapp "github.com/Manuelsilva1/Library/internal/checkout/app"
	checkoutdomain "github.com/Manuelsilva1/Library/internal/checkout/domain"
	checkoutadapter "github.com/Manuelsilva1/Library/internal/checkout/infra/adapter"
	saleapp "github.com/Manuelsilva1/Library/internal/sale/app"
	saledomain "github.com/Manuelsilva1/Library/internal/sale/domain"
	saleadapter "github.com/Manuelsilva1/Library/internal/sale/infra/adapter"
)

type memSlot struct{ items []cartdomain.LineItem }

func (m *memSlot) Load() ([]cartdomain.LineItem, error) { return m.items, nil }
func (m *memSlot) Save(items []cartdomain.LineItem) error {
	m.items = append([]cartdomain.LineItem(nil), items...)
	return nil
}
func (m *memSlot) Discard() error { m.items = nil; return nil }

type stubBooks struct{ books map[string]catalogdomain.Book }

func (s *stubBooks) List(ctx context.Context, f catalogdomain.Filters, page, size int) (catalogdomain.Page, error) {
	var out []catalogdomain.Book
	for _, b := range s.books {
		out = append(out, b)
	}
	return catalogdomain.Page{Content: out, Size: size, TotalElements: int64(len(out)), TotalPages: 1}, nil
}

func (s *stubBooks) Get(ctx context.Context, id string) (catalogdomain.Book, error) {
	b, ok := s.books[id]
	if !ok {
		return catalogdomain.Book{}, catalogapp.ErrNotFound
	}
	return b, nil
}

func (s *stubBooks) Categories(ctx context.Context) ([]string, error) { return []string{"Novela"}, nil }
func (s *stubBooks) Create(ctx context.Context, b catalogdomain.Book) (catalogdomain.Book, error) {
	b.ID = "new"
	s.books[b.ID] = b
	return b, nil
}
func (s *stubBooks) Update(ctx context.Context, id string, b catalogdomain.Book) (catalogdomain.Book, error) {
	b.ID = id
	s.books[id] = b
	return b, nil
}
func (s *stubBooks) Delete(ctx context.Context, id string) error {
	delete(s.books, id)
	return nil
}

type stubOrders struct{ confirmed int }

func (o *stubOrders) Submit(ctx context.Context, req checkoutdomain.OrderRequest) (checkoutdomain.Confirmation, error) {
	o.confirmed++
	return checkoutdomain.Confirmation{OrderID: "o-1", Status: "PENDING"}, nil
}
func (o *stubOrders) List(ctx context.Context) ([]checkoutdomain.Order, error) { return nil, nil }
func (o *stubOrders) Get(ctx context.Context, id string) (checkoutdomain.Order, error) {
	return checkoutdomain.Order{ID: id}, nil
}

type stubAuth struct{ sess authdomain.Session }

func (a *stubAuth) Login(ctx context.Context, email, password string) (authdomain.Session, error) {
	return a.sess, nil
}
func (a *stubAuth) Register(ctx context.Context, name, email, password string) (authdomain.Session, error) {
	return a.sess, nil
}

type memSessions struct {
	sess authdomain.Session
	has  bool
}

func (m *memSessions) Load() (authdomain.Session, bool, error) { return m.sess, m.has, nil }
func (m *memSessions) Save(s authdomain.Session) error         { m.sess, m.has = s, true; return nil }
func (m *memSessions) Discard() error                          { m.has = false; return nil }

func stockOf(n int) *int { return &n }

func newTestServer(t *testing.T, loggedIn bool) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := slog.New(slog.DiscardHandler)

	books := catalogapp.NewService(&stubBooks{books: map[string]catalogdomain.Book{
		"1": {ID: "1", Title: "Rayuela", Author: "Cortázar", Price: decimal.RequireFromString("10.00"), Stock: stockOf(3)},
		"2": {ID: "2", Title: "Bestiario", Author: "Cortázar", Price: decimal.RequireFromString("4.25")},
	}})

	cart := cartapp.NewStore(&memSlot{}, log)
	posCart := cartapp.NewStore(&memSlot{}, log)

	orders := &stubOrders{}
	checkout := checkoutapp.NewService(
		checkoutadapter.NewCartStoreReader(cart),
		&noPricer{},
		orders,
		4,
	)

	sales := saleapp.NewService(saleadapter.NewCartStoreReader(posCart), noSales{}, "")

	sessions := &memSessions{}
	if loggedIn {
		sessions.sess = authdomain.Session{Token: "tok", Email: "ana@example.com"}
		sessions.has = true
	}
	auth := authapp.NewService(&stubAuth{}, sessions, log)

	srv := NewServer(log, books, cart, posCart, checkout, sales, auth)
	return srv, srv.Router()
}

type noPricer struct{}

func (noPricer) PriceBook(ctx context.Context, bookID string) (checkoutapp.PricedBook, error) {
	return checkoutapp.PricedBook{ID: bookID, Price: decimal.NewFromInt(1)}, nil
}

type noSales struct{}

func (noSales) Register(ctx context.Context, req saledomain.SaleRequest) (saledomain.Receipt, error) {
	return saledomain.Receipt{SaleID: "s-1"}, nil
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartEndpoints(t *testing.T) {
	_, router := newTestServer(t, false)

	t.Run("add item clamps to stock", func(t *testing.T) {
		w := do(router, http.MethodPost, "/api/cart/items", `{"bookId":"1","quantity":2}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), `"totalQuantity":2`)

		w = do(router, http.MethodPost, "/api/cart/items", `{"bookId":"1","quantity":5}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalQuantity":3`, "quantity clamps at the stock ceiling")
	})

	t.Run("unknown book -> 404", func(t *testing.T) {
		w := do(router, http.MethodPost, "/api/cart/items", `{"bookId":"nope","quantity":1}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update to zero removes", func(t *testing.T) {
		w := do(router, http.MethodPut, "/api/cart/items/1", `{"quantity":0}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalQuantity":0`)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		w := do(router, http.MethodDelete, "/api/cart", "")
		require.Equal(t, http.StatusOK, w.Code)
		w = do(router, http.MethodDelete, "/api/cart", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
	})
}

func TestAuthGate(t *testing.T) {
	t.Run("anonymous checkout redirects to login with returnUrl", func(t *testing.T) {
		_, router := newTestServer(t, false)

		w := do(router, http.MethodGet, "/api/orders", "")
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login?returnUrl=%2Fapi%2Forders", w.Header().Get("Location"))
	})

	t.Run("authenticated session passes", func(t *testing.T) {
		_, router := newTestServer(t, true)

		w := do(router, http.MethodGet, "/api/orders", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCheckoutFlow(t *testing.T) {
	_, router := newTestServer(t, true)

	w := do(router, http.MethodPost, "/api/cart/items", `{"bookId":"1","quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("order placement clears the cart", func(t *testing.T) {
		w := do(router, http.MethodPost, "/api/checkout", `{"customerName":"Ana García","customerEmail":"ana@example.com"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), `"orderId":"o-1"`)

		w = do(router, http.MethodGet, "/api/cart", "")
		assert.Contains(t, w.Body.String(), `"totalQuantity":0`)
	})

	t.Run("second checkout on empty cart -> 409", func(t *testing.T) {
		w := do(router, http.MethodPost, "/api/checkout", `{"customerName":"Ana García","customerEmail":"ana@example.com"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAdminGate(t *testing.T) {
	_, router := newTestServer(t, false)

	w := do(router, http.MethodPost, "/api/admin/books", `{"title":"x","author":"y","price":"5"}`)
	require.Equal(t, http.StatusFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/login?returnUrl="))
}
