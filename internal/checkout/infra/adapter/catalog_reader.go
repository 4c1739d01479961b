package adapter

import (
	"context"

	catalogapp "github.com/Manuelsilva1/Library/internal/catalog/app"
	checkoutapp "github.com/Manuelsilva1/Library/internal/checkout/app"
)

// CatalogPricer prices books for checkout via the catalog service.
type CatalogPricer struct {
	svc *catalogapp.Service
}

func NewCatalogPricer(svc *catalogapp.Service) *CatalogPricer {
	return &CatalogPricer{svc: svc}
}

func (p *CatalogPricer) PriceBook(ctx context.Context, bookID string) (checkoutapp.PricedBook, error) {
	b, err := p.svc.GetBook(ctx, bookID)
	if err != nil {
		return checkoutapp.PricedBook{}, err
	}

	return checkoutapp.PricedBook{
		ID:    b.ID,
		Title: b.Title,
		Price: b.Price,
	}, nil
}
