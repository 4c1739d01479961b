package app

import (
	"context"
	"sync"
	"time"

	"github.com/Manuelsilva1/Library/internal/catalog/domain"
)

// Result is what the Searcher delivers for the query that was still current
// when its response arrived.
type Result struct {
	Filters domain.Filters
	Page    domain.Page
	Err     error
}

// Searcher drives filter-driven catalog refetching: inputs are debounced, and
// a superseding input drops interest in any in-flight response for a stale
// query. The underlying request itself is not cancelled. A new filter always
// restarts from the first page.
type Searcher struct {
	svc     *Service
	window  time.Duration
	size    int
	deliver func(Result)

	mu    sync.Mutex
	timer *time.Timer
	last  domain.Filters
	prime bool
	gen   uint64
}

// NewSearcher wires a debounced search over svc. deliver is invoked on the
// fetching goroutine, at most once per winning query.
func NewSearcher(svc *Service, window time.Duration, size int, deliver func(Result)) *Searcher {
	if window <= 0 {
		window = 300 * time.Millisecond
	}
	if size <= 0 {
		size = defaultPageSize
	}
	return &Searcher{
		svc:     svc,
		window:  window,
		size:    size,
		deliver: deliver,
	}
}

// Input feeds a new filter value. Identical consecutive values are ignored;
// otherwise any pending fetch is rescheduled to fire after the debounce
// window.
func (s *Searcher) Input(f domain.Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prime && filtersEqual(f, s.last) {
		return
	}
	s.last = f
	s.prime = true

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.window, func() { s.fire(f) })
}

// Flush runs any pending query immediately. Mainly for callers that need the
// refetch now, e.g. an explicit search button.
func (s *Searcher) Flush() {
	s.mu.Lock()
	if s.timer == nil || !s.timer.Stop() {
		s.mu.Unlock()
		return
	}
	f := s.last
	s.mu.Unlock()

	s.fire(f)
}

func (s *Searcher) fire(f domain.Filters) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	page, err := s.svc.ListBooks(context.Background(), f, 1, s.size)

	s.mu.Lock()
	stale := gen != s.gen
	s.mu.Unlock()
	if stale {
		return
	}

	s.deliver(Result{Filters: f, Page: page, Err: err})
}

// filtersEqual compares by value; decimals compare numerically.
func filtersEqual(a, b domain.Filters) bool {
	return a.Category == b.Category &&
		a.Author == b.Author &&
		a.SearchTerm == b.SearchTerm &&
		a.PriceMin.Equal(b.PriceMin) &&
		a.PriceMax.Equal(b.PriceMax)
}
