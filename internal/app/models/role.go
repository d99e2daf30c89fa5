package models

// Role identifies which credential table a login is resolved against.
// The set is closed: anything else is rejected before touching the database.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCenter  Role = "center"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the three recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCenter, RoleStudent:
		return true
	}
	return false
}
