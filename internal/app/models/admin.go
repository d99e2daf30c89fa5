package models

// Admin represents a super-admin credential row.
// Passwords are stored and compared as plain text, matching the hosted
// database this service fronts.
type Admin struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
}
