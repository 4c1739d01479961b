package app

import (
	"log/slog"
	"sync"

	"github.com/Manuelsilva1/Library/internal/cart/domain"
)

// Store holds the authoritative line items for one storefront session and
// publishes derived totals to subscribers. Mutations are synchronous and
// total: bad input degrades to a no-op, never an error. Every mutation runs
// exactly one recompute-persist-publish cycle.
type Store struct {
	mu    sync.Mutex
	items []domain.LineItem

	snapshots SnapshotStore
	log       *slog.Logger

	nextSub int
	subs    map[int]func(domain.Snapshot)
}

// NewStore builds a cart backed by the given snapshot slot. A persisted
// snapshot is loaded when present; malformed content is discarded and the
// cart starts empty.
func NewStore(snapshots SnapshotStore, log *slog.Logger) *Store {
	s := &Store{
		snapshots: snapshots,
		log:       log,
		subs:      make(map[int]func(domain.Snapshot)),
	}
	s.restore()
	return s
}

func (s *Store) restore() {
	items, err := s.snapshots.Load()
	if err != nil {
		s.log.Warn("cart snapshot unreadable, starting empty", slog.Any("err", err))
		if err := s.snapshots.Discard(); err != nil {
			s.log.Warn("cart snapshot discard failed", slog.Any("err", err))
		}
		return
	}

	for _, li := range items {
		if !li.Valid() {
			s.log.Warn("cart snapshot malformed, starting empty")
			if err := s.snapshots.Discard(); err != nil {
				s.log.Warn("cart snapshot discard failed", slog.Any("err", err))
			}
			return
		}
	}

	s.items = items
}

// Subscribe registers an observer called with the full snapshot after every
// mutation. The returned func cancels the subscription. Callbacks run on the
// mutating goroutine and must not mutate the cart.
func (s *Store) Subscribe(fn func(domain.Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// AddItem puts quantity units of the product into the cart, merging with an
// existing line for the same book. The resulting quantity is clamped to the
// stock ceiling recorded when the book was first added. Non-positive
// quantities are ignored.
func (s *Store) AddItem(p domain.Product, quantity int) {
	if p.ID == "" || quantity <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(p.ID); idx >= 0 {
		li := &s.items[idx]
		li.Quantity = clamp(li.Quantity+quantity, li.StockLimit)
	} else {
		s.items = append(s.items, domain.LineItem{
			BookID:        p.ID,
			Title:         p.Title,
			Author:        p.Author,
			CoverImageURL: p.CoverImageURL,
			UnitPrice:     p.UnitPrice,
			Quantity:      clamp(quantity, p.StockLimit),
			StockLimit:    p.StockLimit,
		})
	}

	s.commit()
}

// UpdateQuantity sets the line's quantity, clamped to its stock ceiling. A
// quantity of zero or less removes the line. Unknown book ids are ignored.
func (s *Store) UpdateQuantity(bookID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(bookID)
	if idx < 0 {
		return
	}

	if quantity <= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	} else {
		li := &s.items[idx]
		li.Quantity = clamp(quantity, li.StockLimit)
	}

	s.commit()
}

// RemoveItem deletes the matching line item if present.
func (s *Store) RemoveItem(bookID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(bookID)
	if idx < 0 {
		return
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.commit()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.commit()
}

// GetItem returns the current line item for a book, if any. Read-only.
func (s *Store) GetItem(bookID string) (domain.LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(bookID); idx >= 0 {
		return s.items[idx], true
	}
	return domain.LineItem{}, false
}

// Snapshot returns the current state with derived totals.
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) indexOf(bookID string) int {
	for i := range s.items {
		if s.items[i].BookID == bookID {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() domain.Snapshot {
	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)
	return domain.Derive(items)
}

// commit persists the line items and publishes the new snapshot. Called with
// the mutex held, once per mutation. A failed write is logged and the
// in-memory state stays authoritative.
func (s *Store) commit() {
	if err := s.snapshots.Save(s.items); err != nil {
		s.log.Warn("cart snapshot write failed", slog.Any("err", err))
	}

	snap := s.snapshot()
	for _, fn := range s.subs {
		fn(snap)
	}
}

func clamp(quantity, stockLimit int) int {
	if stockLimit > domain.UnboundedStock && quantity > stockLimit {
		return stockLimit
	}
	return quantity
}
