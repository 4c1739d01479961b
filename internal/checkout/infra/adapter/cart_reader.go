package adapter

import (
	cartapp "github.com/Manuelsilva1/Library/internal/cart/app"
	checkoutapp "github.com/Manuelsilva1/Library/internal/checkout/app"
)

// CartStoreReader exposes a session cart store to checkout.
type CartStoreReader struct {
	store *cartapp.Store
}

func NewCartStoreReader(store *cartapp.Store) *CartStoreReader {
	return &CartStoreReader{store: store}
}

func (r *CartStoreReader) Lines() []checkoutapp.CartLine {
	snap := r.store.Snapshot()

	lines := make([]checkoutapp.CartLine, 0, len(snap.Items))
	for _, it := range snap.Items {
		lines = append(lines, checkoutapp.CartLine{
			BookID:   it.BookID,
			Title:    it.Title,
			Quantity: it.Quantity,
		})
	}
	return lines
}

func (r *CartStoreReader) Clear() {
	r.store.Clear()
}
