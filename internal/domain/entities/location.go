package entities

// LocationType classifies a searchable campus entity.
type LocationType string

const (
	LocationTypeRoom        LocationType = "Room"
	LocationTypeBuilding    LocationType = "Building"
	LocationTypeNonBuilding LocationType = "NonBuilding"
)

// Location is a room, building, or other non-building place that can
// receive ratings. DBName is the canonical name used by rating lookups;
// Name is the display form shown in search results.
type Location struct {
	ID           int          `json:"id" db:"id"`
	Name         string       `json:"location_name" db:"display_name"`
	DBName       string       `json:"db_location_name,omitempty" db:"name"`
	Type         LocationType `json:"location_type" db:"location_type"`
	CampusName   string       `json:"campus_name" db:"campus_name"`
	BuildingName string       `json:"building_name,omitempty" db:"building_name"`
	RoomNumber   string       `json:"room_number,omitempty" db:"room_number"`
	RoomSize     string       `json:"room_size,omitempty" db:"room_size"`
	RoomType     string       `json:"room_type,omitempty" db:"room_type"`
}
