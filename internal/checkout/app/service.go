package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/Manuelsilva1/Library/internal/checkout/domain"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidCustomer = errors.New("invalid customer details")
	ErrInvalidOrderID  = errors.New("invalid order id")
)

type Service struct {
	cart   Cart
	books  BookPricer
	orders OrderClient

	maxConcurrent int
}

func NewService(cart Cart, books BookPricer, orders OrderClient, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		cart:          cart,
		books:         books,
		orders:        orders,
		maxConcurrent: maxConcurrent,
	}
}

// Quote prices the current cart lines against the live catalog. Prices come
// from the backend at quote time, not from the cart's captured unit prices,
// so the customer sees what the order would actually cost.
func (s *Service) Quote(ctx context.Context) (domain.Quote, error) {
	items := s.cart.Lines()
	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]domain.QuoteLine, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]

			book, err := s.books.PriceBook(ctx, it.BookID)
			if err != nil {
				return fmt.Errorf("failed to price book %s: %w", it.BookID, err)
			}

			qty := decimal.NewFromInt(int64(it.Quantity))
			lines[idx] = domain.QuoteLine{
				BookID:    book.ID,
				Title:     book.Title,
				Quantity:  it.Quantity,
				UnitPrice: book.Price,
				LineTotal: book.Price.Mul(qty),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}

	return domain.Quote{
		Lines: lines,
		Total: total.Round(2),
	}, nil
}

// PlaceOrder submits the cart as an order for the given customer. The cart
// is cleared only after the backend confirms creation.
func (s *Service) PlaceOrder(ctx context.Context, customer domain.Customer) (domain.Confirmation, error) {
	if err := validateCustomer(customer); err != nil {
		return domain.Confirmation{}, err
	}

	items := s.cart.Lines()
	if len(items) == 0 {
		return domain.Confirmation{}, ErrEmptyCart
	}

	req := domain.OrderRequest{Customer: customer}
	for _, it := range items {
		req.Items = append(req.Items, domain.OrderItem{
			BookID:   it.BookID,
			Quantity: it.Quantity,
		})
	}

	conf, err := s.orders.Submit(ctx, req)
	if err != nil {
		return domain.Confirmation{}, err
	}

	s.cart.Clear()
	return conf, nil
}

func (s *Service) Orders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *Service) Order(ctx context.Context, id string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, ErrInvalidOrderID
	}
	return s.orders.Get(ctx, id)
}

func validateCustomer(c domain.Customer) error {
	name := strings.TrimSpace(c.Name)
	if len(name) < 2 || len(name) > 100 {
		return ErrInvalidCustomer
	}

	email := strings.TrimSpace(c.Email)
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return ErrInvalidCustomer
	}

	return nil
}
