package app

import "github.com/Manuelsilva1/Library/internal/cart/domain"

// SnapshotStore is the durable slot the cart writes through to. One logical
// key holds the whole line-item sequence.
type SnapshotStore interface {
	Load() ([]domain.LineItem, error)
	Save(items []domain.LineItem) error
	Discard() error
}
