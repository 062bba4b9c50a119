package entities

import "time"

// Rating is a structured review of a location across five numeric axes
// plus free text. Role is the author's role at submission time, kept for
// display.
type Rating struct {
	ID               int       `json:"id,omitempty" db:"id"`
	LocationID       int       `json:"-" db:"location_id"`
	Username         string    `json:"username" db:"username"`
	Role             string    `json:"role" db:"role"`
	Score            int       `json:"score" db:"score"`
	Noise            int       `json:"noise" db:"noise"`
	Cleanliness      int       `json:"cleanliness" db:"cleanliness"`
	EquipmentQuality int       `json:"equipment_quality" db:"equipment_quality"`
	WifiStrength     int       `json:"wifi_strength" db:"wifi_strength"`
	Comment          string    `json:"comment" db:"comment"`
	CreatedAt        time.Time `json:"created_at,omitempty" db:"created_at"`
}
