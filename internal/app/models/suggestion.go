package models

import "time"

// Suggestion is a public feedback entry. Append-only; the admin can
// delete individual rows or clear the whole table.
type Suggestion struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
