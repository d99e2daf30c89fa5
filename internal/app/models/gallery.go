package models

import "time"

// GalleryImage is a homepage gallery entry, soft-hidden via IsActive.
type GalleryImage struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Img       string    `json:"img"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
