package dto

import "github.com/lifeway/lms-backend/internal/app/models"

// CreateSuggestionRequest is the public feedback form. Only the message
// is required; name and mobile fall back to anonymous placeholders.
type CreateSuggestionRequest struct {
	Message string `json:"message" binding:"required"`
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
}

// SuggestionCreatedResponse returns the inserted row
type SuggestionCreatedResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    *models.Suggestion `json:"data"`
}

// SuggestionListResponse is the admin listing payload
type SuggestionListResponse struct {
	Success     bool                 `json:"success"`
	Suggestions []*models.Suggestion `json:"suggestions"`
	Count       int                  `json:"count"`
}
