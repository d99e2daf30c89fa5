package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/pkg/logger"
)

// NoticeRepository handles notice database operations
type NoticeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNoticeRepository creates a new NoticeRepository
func NewNoticeRepository(db *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a notice row
func (r *NoticeRepository) Create(ctx context.Context, notice *models.Notice) (int64, error) {
	sql, args, err := r.sb.Insert("notices").
		Columns("title", "body", "is_active").
		Values(notice.Title, notice.Body, true).
		Suffix("RETURNING id, is_active, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create notice query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&notice.ID, &notice.IsActive, &notice.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Str("title", notice.Title).Msg("Error executing create notice query")
		return 0, fmt.Errorf("error creating notice: %w", err)
	}

	return notice.ID, nil
}

// GetActive retrieves active notices, newest first
func (r *NoticeRepository) GetActive(ctx context.Context) ([]*models.Notice, error) {
	sql, args, err := r.sb.Select("id", "title", "body", "is_active", "created_at").
		From("notices").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get notices query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get notices query")
		return nil, fmt.Errorf("error querying notices: %w", err)
	}
	defer rows.Close()

	notices := []*models.Notice{}
	for rows.Next() {
		n := &models.Notice{}
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.IsActive, &n.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning notice row")
			return nil, fmt.Errorf("error scanning notice row: %w", err)
		}
		notices = append(notices, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notice rows: %w", err)
	}

	return notices, nil
}
