package pages

import (
	"context"

	"github.com/campusinsider/campus-insider/internal/client"
	"github.com/campusinsider/campus-insider/internal/client/table"
	"github.com/campusinsider/campus-insider/internal/domain/entities"
	"github.com/campusinsider/campus-insider/pkg/names"
)

const universityDetailPageSize = 10

// UniversityDetailPage shows one university with its campuses and
// locations.
type UniversityDetailPage struct {
	api *client.APIClient

	detail Resource[*client.UniversityDetail]
	table  *table.Table

	// OnOpenLocation receives the canonical location name and the
	// university name when a location row is clicked.
	OnOpenLocation func(location, university string)

	universityName string
}

// NewUniversityDetailPage creates the controller.
func NewUniversityDetailPage(api *client.APIClient) *UniversityDetailPage {
	p := &UniversityDetailPage{api: api}
	p.table = table.New([]table.Column{
		{Key: "location_name", Label: "Location"},
		{Key: "type", Label: "Type"},
		{Key: "campus_name", Label: "Campus"},
		{Key: "building_name", Label: "Building"},
	}, nil, universityDetailPageSize)
	p.table.OnSelect(func(row table.Row) {
		if p.OnOpenLocation == nil {
			return
		}
		display, _ := row["location_name"].(string)
		canonical, _ := row["db_location_name"].(string)
		p.OnOpenLocation(names.Canonical(display, canonical), p.universityName)
	})
	return p
}

// Load fetches the detail view for a university.
func (p *UniversityDetailPage) Load(ctx context.Context, name, state string) {
	p.universityName = name
	p.detail.Load(ctx, func(ctx context.Context) (*client.UniversityDetail, error) {
		return p.api.GetUniversity(ctx, name, state)
	})
	if p.detail.State() != StateSuccess {
		return
	}

	p.table.SetRows(locationRows(p.detail.Value().Locations))
}

// University returns the fetched record, or nil before a successful
// load. The payload carries it as a single-element list.
func (p *UniversityDetailPage) University() *entities.University {
	detail := p.detail.Value()
	if detail == nil || len(detail.UniversityInfo) == 0 {
		return nil
	}
	return &detail.UniversityInfo[0]
}

// Campuses returns the campus list of the loaded university.
func (p *UniversityDetailPage) Campuses() []entities.Campus {
	if detail := p.detail.Value(); detail != nil {
		return detail.Campuses
	}
	return nil
}

// Table exposes the locations table for rendering.
func (p *UniversityDetailPage) Table() *table.Table {
	return p.table
}

// State reports the fetch lifecycle for the view.
func (p *UniversityDetailPage) State() State {
	return p.detail.State()
}

// Err returns the last fetch error for the inline message.
func (p *UniversityDetailPage) Err() error {
	return p.detail.Err()
}

func locationRows(locations []entities.Location) []table.Row {
	rows := make([]table.Row, 0, len(locations))
	for _, loc := range locations {
		rows = append(rows, table.Row{
			"location_name":    loc.Name,
			"db_location_name": loc.DBName,
			"type":             string(loc.Type),
			"campus_name":      loc.CampusName,
			"building_name":    loc.BuildingName,
			"room_number":      loc.RoomNumber,
		})
	}
	return rows
}
