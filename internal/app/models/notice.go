package models

import "time"

// Notice is an announcement published by the admin and shown on the
// public site, soft-hidden via IsActive.
type Notice struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
