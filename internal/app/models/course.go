package models

import "time"

// Course represents a published course. Courses are never hard-deleted;
// IsActive=false hides them from the public listing.
type Course struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Duration    string    `json:"duration"`
	Fee         string    `json:"fee"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Eligibility string    `json:"eligibility"`
	Img         string    `json:"img"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
