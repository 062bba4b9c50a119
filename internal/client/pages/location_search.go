package pages

import (
	"context"
	"sync"

	"github.com/campusinsider/campus-insider/internal/client"
	"github.com/campusinsider/campus-insider/internal/client/search"
	"github.com/campusinsider/campus-insider/internal/client/table"
	"github.com/campusinsider/campus-insider/internal/client/tags"
	"github.com/campusinsider/campus-insider/pkg/names"
)

const locationSearchPageSize = 10

// LocationSearchPage drives the faceted location search: filter state,
// the equipment and accessibility selectors, a debounced fetch, and the
// result table.
type LocationSearchPage struct {
	searcher *search.Searcher

	mu      sync.Mutex
	filters search.Filters
	lastErr error
	state   State

	table     *table.Table
	equipment *tags.Selector
	access    *tags.Selector

	university string
	stateCode  string

	// OnOpenRatings receives the canonical location name and the
	// university name when a result row is clicked.
	OnOpenRatings func(location, university string)
}

// NewLocationSearchPage creates the controller for searching within one
// university. The tag vocabularies are fetched once on construction.
func NewLocationSearchPage(ctx context.Context, api *client.APIClient, university, state string) *LocationSearchPage {
	p := &LocationSearchPage{
		university: university,
		stateCode:  state,
		equipment:  tags.NewSelector(ctx, api, "/api/equipmentTags"),
		access:     tags.NewSelector(ctx, api, "/api/accessibilityTags"),
	}

	p.table = table.New([]table.Column{
		{Key: "location_name", Label: "Location"},
		{Key: "type", Label: "Type"},
		{Key: "campus_name", Label: "Campus"},
		{Key: "building_name", Label: "Building"},
	}, nil, locationSearchPageSize)
	p.table.OnSelect(func(row table.Row) {
		if p.OnOpenRatings == nil {
			return
		}
		display, _ := row["location_name"].(string)
		canonical, _ := row["db_location_name"].(string)
		p.OnOpenRatings(names.Canonical(display, canonical), p.university)
	})

	p.searcher = search.NewSearcher(api, search.DefaultDebounce, func(result search.Result) {
		p.mu.Lock()
		defer p.mu.Unlock()
		if result.Err != nil {
			p.state = StateError
			p.lastErr = result.Err
			return
		}
		p.state = StateSuccess
		p.lastErr = nil
		// New dataset resets the table to page 1.
		p.table.SetRows(locationRows(result.Locations))
	})

	return p
}

// SetFilters applies a new filter state and schedules a debounced
// search carrying the selected tag sets.
func (p *LocationSearchPage) SetFilters(filters search.Filters) {
	filters.Equipment = p.equipment.Selected()
	filters.Accessibility = p.access.Selected()

	p.mu.Lock()
	p.filters = filters
	p.state = StateLoading
	p.mu.Unlock()

	p.searcher.Update(filters, p.university, p.stateCode)
}

// Refresh re-runs the current filter state immediately.
func (p *LocationSearchPage) Refresh() {
	p.mu.Lock()
	filters := p.filters
	p.state = StateLoading
	p.mu.Unlock()

	p.searcher.Update(filters, p.university, p.stateCode)
	p.searcher.Flush()
}

// Equipment exposes the equipment tag selector.
func (p *LocationSearchPage) Equipment() *tags.Selector {
	return p.equipment
}

// Accessibility exposes the accessibility tag selector.
func (p *LocationSearchPage) Accessibility() *tags.Selector {
	return p.access
}

// Table exposes the result table for rendering.
func (p *LocationSearchPage) Table() *table.Table {
	return p.table
}

// State reports the fetch lifecycle for the view.
func (p *LocationSearchPage) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Err returns the last fetch error for the inline message.
func (p *LocationSearchPage) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// Close stops the debounce loop.
func (p *LocationSearchPage) Close() {
	p.searcher.Close()
}
