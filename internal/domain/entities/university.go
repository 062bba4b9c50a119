package entities

// University represents a university in the directory.
type University struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	State   string `json:"state" db:"state"`
	WikiURL string `json:"wiki_url" db:"wiki_url"`
}

// Campus represents a campus belonging to a university.
type Campus struct {
	ID           int    `json:"id" db:"id"`
	UniversityID int    `json:"university_id" db:"university_id"`
	Name         string `json:"campus_name" db:"name"`
}

// Building represents a building on a campus.
type Building struct {
	ID       int    `json:"id" db:"id"`
	CampusID int    `json:"campus_id" db:"campus_id"`
	Name     string `json:"building_name" db:"name"`
}

// UniversityResult is one row of a university search response.
type UniversityResult struct {
	University string `json:"university" db:"name"`
	State      string `json:"state" db:"state"`
}
