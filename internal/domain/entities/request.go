package entities

import "time"

// RequestStatus is the review state of a location request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// LocationRequest is a user-submitted proposal for a location not yet in
// the directory, pending admin review.
type LocationRequest struct {
	ID             int           `json:"id" db:"id"`
	RoomName       string        `json:"room_name" db:"room_name"`
	LocationType   string        `json:"location_type" db:"location_type"`
	UniversityName string        `json:"university_name" db:"university_name"`
	State          string        `json:"state" db:"state"`
	CampusName     string        `json:"campus_name" db:"campus_name"`
	BuildingName   string        `json:"building_name,omitempty" db:"building_name"`
	Notes          string        `json:"notes,omitempty" db:"notes"`
	RequestedBy    string        `json:"requested_by_username" db:"requested_by_username"`
	Status         RequestStatus `json:"status" db:"status"`
	CreatedAt      time.Time     `json:"created_at,omitempty" db:"created_at"`
}
