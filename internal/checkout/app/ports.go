package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Manuelsilva1/Library/internal/checkout/domain"
)

// CartLine is checkout's view of one cart line; the cart's own types stay
// behind the adapter.
type CartLine struct {
	BookID   string
	Title    string
	Quantity int
}

// Cart is what checkout needs from the session cart: read the lines, and
// clear it once an order is confirmed.
type Cart interface {
	Lines() []CartLine
	Clear()
}

type PricedBook struct {
	ID    string
	Title string
	Price decimal.Decimal
}

// BookPricer supplies live prices at quote time.
type BookPricer interface {
	PriceBook(ctx context.Context, bookID string) (PricedBook, error)
}

// OrderClient submits and reads orders against the remote API.
type OrderClient interface {
	Submit(ctx context.Context, req domain.OrderRequest) (domain.Confirmation, error)
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
}
