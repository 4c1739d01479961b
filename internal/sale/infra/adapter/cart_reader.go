package adapter

import (
	cartapp "github.com/Manuelsilva1/Library/internal/cart/app"
	saleapp "github.com/Manuelsilva1/Library/internal/sale/app"
)

// CartStoreReader exposes the POS terminal's cart store to the sale service.
type CartStoreReader struct {
	store *cartapp.Store
}

func NewCartStoreReader(store *cartapp.Store) *CartStoreReader {
	return &CartStoreReader{store: store}
}

func (r *CartStoreReader) Lines() []saleapp.CartLine {
	snap := r.store.Snapshot()

	lines := make([]saleapp.CartLine, 0, len(snap.Items))
	for _, it := range snap.Items {
		lines = append(lines, saleapp.CartLine{
			BookID:   it.BookID,
			Quantity: it.Quantity,
		})
	}
	return lines
}

func (r *CartStoreReader) Clear() {
	r.store.Clear()
}
