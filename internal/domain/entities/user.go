package entities

import "time"

// Role is a closed set of account roles. Anonymous sessions are visitors.
type Role string

const (
	RoleVisitor Role = "visitor"
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a raw role string onto the closed set, defaulting to
// visitor for anything unrecognized.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return Role(raw)
	default:
		return RoleVisitor
	}
}

// User is an account record. The password hash never leaves the server.
type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	UniversityID int       `json:"university_id" db:"university_id"`
	CreatedAt    time.Time `json:"created_at,omitempty" db:"created_at"`
}
