package app

import (
	"context"
	"errors"
	"strings"

	"github.com/Manuelsilva1/Library/internal/sale/domain"
)

var (
	ErrEmptyCart       = errors.New("nothing to ring up")
	ErrMissingSellerID = errors.New("seller id is required")
)

// CartLine mirrors the POS cart's view of a line; the POS screen owns its own
// cart store, separate from the web session's.
type CartLine struct {
	BookID   string
	Quantity int
}

type Cart interface {
	Lines() []CartLine
	Clear()
}

// SaleClient registers a completed sale with the backend, which decrements
// stock and answers with a receipt.
type SaleClient interface {
	Register(ctx context.Context, req domain.SaleRequest) (domain.Receipt, error)
}

type Service struct {
	cart          Cart
	sales         SaleClient
	defaultSeller string
}

// NewService wires the POS cart to the sales backend. defaultSeller is the
// seller id registered for this terminal; it may be empty, in which case every
// sale must name its seller explicitly.
func NewService(cart Cart, sales SaleClient, defaultSeller string) *Service {
	return &Service{
		cart:          cart,
		sales:         sales,
		defaultSeller: strings.TrimSpace(defaultSeller),
	}
}

// RegisterSale submits the POS cart as one sale. The cart clears only after
// the backend accepts it; an insufficient-stock rejection leaves the cart
// intact for the seller to adjust.
func (s *Service) RegisterSale(ctx context.Context, sellerID, customerName string) (domain.Receipt, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		sellerID = s.defaultSeller
	}
	if sellerID == "" {
		return domain.Receipt{}, ErrMissingSellerID
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return domain.Receipt{}, ErrEmptyCart
	}

	req := domain.SaleRequest{
		SellerID:     sellerID,
		CustomerName: strings.TrimSpace(customerName),
	}
	for _, l := range lines {
		req.Items = append(req.Items, domain.SaleItem{
			BookID:   l.BookID,
			Quantity: l.Quantity,
		})
	}

	receipt, err := s.sales.Register(ctx, req)
	if err != nil {
		return domain.Receipt{}, err
	}

	s.cart.Clear()
	return receipt, nil
}
