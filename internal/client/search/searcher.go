package search

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
)

// DefaultDebounce is the quiet period after the last filter change
// before a request goes out.
const DefaultDebounce = 300 * time.Millisecond

// Fetcher runs the backend location search.
type Fetcher interface {
	SearchLocations(ctx context.Context, params url.Values) ([]entities.Location, error)
}

// Result is one settled search delivered to the callback.
type Result struct {
	Locations []entities.Location
	Err       error
}

// Searcher debounces filter changes and issues at most one request per
// quiet period. Every request carries a generation number; only the
// latest generation's response is delivered, so a slow early response
// can never overwrite a newer one.
type Searcher struct {
	fetcher  Fetcher
	debounce time.Duration
	deliver  func(Result)

	mu         sync.Mutex
	timer      *time.Timer
	pending    url.Values
	generation uint64
	closed     bool
}

// NewSearcher creates a searcher delivering settled results to deliver.
// The callback runs on the request goroutine.
func NewSearcher(fetcher Fetcher, debounce time.Duration, deliver func(Result)) *Searcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Searcher{
		fetcher:  fetcher,
		debounce: debounce,
		deliver:  deliver,
	}
}

// Update schedules a search for the given filter state, restarting the
// quiet period and superseding any pending or in-flight request.
func (s *Searcher) Update(filters Filters, university, state string) {
	params := filters.Values(university, state)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.generation++
	generation := s.generation
	s.pending = params

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.run(generation, params)
	})
}

// Flush fires any pending search immediately. Used when the page wants
// results on mount without waiting out the quiet period.
func (s *Searcher) Flush() {
	s.mu.Lock()
	if s.closed || s.timer == nil || !s.timer.Stop() {
		s.mu.Unlock()
		return
	}
	generation := s.generation
	params := s.pending
	s.mu.Unlock()

	s.run(generation, params)
}

// Close stops any pending timer. In-flight responses are discarded.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
}

func (s *Searcher) run(generation uint64, params url.Values) {
	if !s.isLatest(generation) {
		return
	}

	locations, err := s.fetcher.SearchLocations(context.Background(), params)

	// A newer request may have been issued while this one was in
	// flight; its response wins.
	if !s.isLatest(generation) {
		return
	}
	if s.deliver != nil {
		s.deliver(Result{Locations: locations, Err: err})
	}
}

func (s *Searcher) isLatest(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && generation == s.generation
}
