package pages

import (
	"context"

	"github.com/campusinsider/campus-insider/internal/client"
	"github.com/campusinsider/campus-insider/internal/client/table"
	"github.com/campusinsider/campus-insider/internal/domain/entities"
)

const universitySearchPageSize = 10

// UniversitySearchPage drives the landing search: a query box, an
// optional state and campus-type filter, and a result table.
type UniversitySearchPage struct {
	api *client.APIClient

	results Resource[[]entities.UniversityResult]
	table   *table.Table

	// OnOpen receives the selected university name and state when a
	// row is clicked.
	OnOpen func(name, state string)
}

// NewUniversitySearchPage creates the controller.
func NewUniversitySearchPage(api *client.APIClient) *UniversitySearchPage {
	p := &UniversitySearchPage{api: api}
	p.table = table.New([]table.Column{
		{Key: "university", Label: "University"},
		{Key: "state", Label: "State"},
	}, nil, universitySearchPageSize)
	p.table.OnSelect(func(row table.Row) {
		if p.OnOpen != nil {
			name, _ := row["university"].(string)
			state, _ := row["state"].(string)
			p.OnOpen(name, state)
		}
	})
	return p
}

// Search runs the query and refreshes the table. The table resets to
// page 1 because the dataset changed.
func (p *UniversitySearchPage) Search(ctx context.Context, query, state, campusType string) {
	p.results.Load(ctx, func(ctx context.Context) ([]entities.UniversityResult, error) {
		return p.api.SearchUniversities(ctx, query, state, campusType)
	})
	if p.results.State() != StateSuccess {
		return
	}

	rows := make([]table.Row, 0, len(p.results.Value()))
	for _, result := range p.results.Value() {
		rows = append(rows, table.Row{
			"university": result.University,
			"state":      result.State,
		})
	}
	p.table.SetRows(rows)
}

// Table exposes the result table for rendering.
func (p *UniversitySearchPage) Table() *table.Table {
	return p.table
}

// State reports the fetch lifecycle for the view.
func (p *UniversitySearchPage) State() State {
	return p.results.State()
}

// Err returns the last fetch error for the inline message.
func (p *UniversitySearchPage) Err() error {
	return p.results.Err()
}
