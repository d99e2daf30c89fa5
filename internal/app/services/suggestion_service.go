package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/app/repositories"
	"github.com/lifeway/lms-backend/internal/pkg/apperrors"
)

// SuggestionService defines the interface for public feedback operations
type SuggestionService interface {
	Submit(ctx context.Context, req dto.CreateSuggestionRequest) (*models.Suggestion, error)
	GetAll(ctx context.Context) ([]*models.Suggestion, error)
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}

// suggestionServiceImpl implements the SuggestionService interface
type suggestionServiceImpl struct {
	suggestionRepo *repositories.SuggestionRepository
}

// NewSuggestionService creates a new suggestion service instance
func NewSuggestionService(suggestionRepo *repositories.SuggestionRepository) SuggestionService {
	return &suggestionServiceImpl{
		suggestionRepo: suggestionRepo,
	}
}

// Submit stores a public suggestion. Name and mobile are optional and
// fall back to anonymous placeholders.
func (s *suggestionServiceImpl) Submit(ctx context.Context, req dto.CreateSuggestionRequest) (*models.Suggestion, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, apperrors.NewValidationError("Suggestion message is required!")
	}

	suggestion := &models.Suggestion{
		Name:    req.Name,
		Mobile:  req.Mobile,
		Message: message,
	}
	if suggestion.Name == "" {
		suggestion.Name = "Anonymous"
	}
	if suggestion.Mobile == "" {
		suggestion.Mobile = "N/A"
	}

	if _, err := s.suggestionRepo.Create(ctx, suggestion); err != nil {
		return nil, fmt.Errorf("error saving suggestion: %w", err)
	}

	return suggestion, nil
}

// GetAll retrieves all suggestions, newest first
func (s *suggestionServiceImpl) GetAll(ctx context.Context) ([]*models.Suggestion, error) {
	suggestions, err := s.suggestionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving suggestions: %w", err)
	}
	return suggestions, nil
}

// Delete removes one suggestion by id
func (s *suggestionServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.suggestionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting suggestion: %w", err)
	}
	return nil
}

// Clear removes every suggestion
func (s *suggestionServiceImpl) Clear(ctx context.Context) error {
	if err := s.suggestionRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("error clearing suggestions: %w", err)
	}
	return nil
}
