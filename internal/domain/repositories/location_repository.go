package repositories

import (
	"context"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
)

// LocationFilter is the faceted location search input. Zero values mean
// "not filtered"; room facets only apply when Types includes Room, and the
// rating thresholds only apply when ByRating is set.
type LocationFilter struct {
	University string
	State      string
	Query      string

	Types      []entities.LocationType
	RoomSizes  []string
	RoomTypes  []string
	RoomNumber string
	Building   string
	Campus     string

	ByRating       bool
	MinScore       int
	MaxNoise       int
	MinCleanliness int
	MinEquipment   int
	MinWifi        int

	Equipment     []string
	Accessibility []string

	Limit int
}

// LocationRepository defines lookup operations over locations.
type LocationRepository interface {
	Search(ctx context.Context, filter LocationFilter) ([]entities.Location, error)
	ListByUniversity(ctx context.Context, universityID int) ([]entities.Location, error)

	// FindByName resolves a location within a university by canonical name
	// first, falling back to the display name.
	FindByName(ctx context.Context, university, name string) (*entities.Location, error)
}
