package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/pkg/logger"
)

// SuggestionRepository handles suggestion database operations
type SuggestionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSuggestionRepository creates a new SuggestionRepository
func NewSuggestionRepository(db *pgxpool.Pool) *SuggestionRepository {
	return &SuggestionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a suggestion row
func (r *SuggestionRepository) Create(ctx context.Context, suggestion *models.Suggestion) (int64, error) {
	sql, args, err := r.sb.Insert("suggestions").
		Columns("name", "mobile", "message").
		Values(suggestion.Name, suggestion.Mobile, suggestion.Message).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create suggestion query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&suggestion.ID, &suggestion.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create suggestion query")
		return 0, fmt.Errorf("error creating suggestion: %w", err)
	}

	return suggestion.ID, nil
}

// GetAll retrieves all suggestions, newest first
func (r *SuggestionRepository) GetAll(ctx context.Context) ([]*models.Suggestion, error) {
	sql, args, err := r.sb.Select("id", "name", "mobile", "message", "created_at").
		From("suggestions").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all suggestions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all suggestions query")
		return nil, fmt.Errorf("error querying suggestions: %w", err)
	}
	defer rows.Close()

	suggestions := []*models.Suggestion{}
	for rows.Next() {
		s := &models.Suggestion{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Mobile, &s.Message, &s.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning suggestion row")
			return nil, fmt.Errorf("error scanning suggestion row: %w", err)
		}
		suggestions = append(suggestions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating suggestion rows: %w", err)
	}

	return suggestions, nil
}

// Delete removes one suggestion. Deleting an id that no longer exists
// is treated as success, matching the existing contract.
func (r *SuggestionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("suggestions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete suggestion query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("suggestionID", id).Msg("Error executing delete suggestion query")
		return fmt.Errorf("error deleting suggestion: %w", err)
	}

	return nil
}

// DeleteAll clears the suggestions table
func (r *SuggestionRepository) DeleteAll(ctx context.Context) error {
	sql, args, err := r.sb.Delete("suggestions").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build clear suggestions query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing clear suggestions query")
		return fmt.Errorf("error clearing suggestions: %w", err)
	}

	return nil
}

// Count returns the number of suggestion rows
func (r *SuggestionRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("suggestions").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count suggestions query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting suggestions")
		return 0, fmt.Errorf("error counting suggestions: %w", err)
	}

	return count, nil
}
