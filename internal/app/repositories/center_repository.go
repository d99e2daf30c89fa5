package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/pkg/apperrors"
	"github.com/lifeway/lms-backend/internal/pkg/dberrors"
	"github.com/lifeway/lms-backend/internal/pkg/logger"
)

var centerColumns = []string{
	"id", "code", "username", "password", "name", "director",
	"location", "state", "wallet", "valid_upto", "is_blocked", "created_at",
}

// CenterRepository handles center database operations
type CenterRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCenterRepository creates a new CenterRepository
func NewCenterRepository(db *pgxpool.Pool) *CenterRepository {
	return &CenterRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCenter(row pgx.Row) (*models.Center, error) {
	c := &models.Center{}
	err := row.Scan(&c.ID, &c.Code, &c.Username, &c.Password, &c.Name, &c.Director,
		&c.Location, &c.State, &c.Wallet, &c.ValidUpto, &c.IsBlocked, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new center with its generated code. The unique index
// on code turns a collision of the random suffix into ErrCenterAlreadyExists.
func (r *CenterRepository) Create(ctx context.Context, center *models.Center) (int64, error) {
	sql, args, err := r.sb.Insert("centers").
		Columns("code", "username", "password", "name", "director", "location", "state").
		Values(center.Code, center.Username, center.Password, center.Name,
			center.Director, center.Location, center.State).
		Suffix("RETURNING id, wallet, valid_upto, is_blocked, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create center query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&center.ID, &center.Wallet, &center.ValidUpto, &center.IsBlocked, &center.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrCenterAlreadyExists
		}
		logger.Error().Err(err).Str("code", center.Code).Msg("Error executing create center query")
		return 0, fmt.Errorf("error creating center: %w", err)
	}

	return center.ID, nil
}

// GetByCredentials selects the center whose username and password both match exactly
func (r *CenterRepository) GetByCredentials(ctx context.Context, username, password string) (*models.Center, error) {
	sql, args, err := r.sb.Select(centerColumns...).
		From("centers").
		Where(squirrel.Eq{"username": username, "password": password}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build center credentials query: %w", err)
	}

	center, err := scanCenter(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidCredentials
		}
		logger.Error().Err(err).Str("username", username).Msg("Error querying center credentials")
		return nil, fmt.Errorf("error querying center credentials: %w", err)
	}

	return center, nil
}

// GetByCode retrieves a center by its code
func (r *CenterRepository) GetByCode(ctx context.Context, code string) (*models.Center, error) {
	sql, args, err := r.sb.Select(centerColumns...).
		From("centers").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get center query: %w", err)
	}

	center, err := scanCenter(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCenterNotFound
		}
		logger.Error().Err(err).Str("code", code).Msg("Error scanning center row")
		return nil, fmt.Errorf("error getting center by code: %w", err)
	}

	return center, nil
}

// GetAll retrieves all centers, newest first
func (r *CenterRepository) GetAll(ctx context.Context) ([]*models.Center, error) {
	sql, args, err := r.sb.Select(centerColumns...).
		From("centers").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all centers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all centers query")
		return nil, fmt.Errorf("error querying centers: %w", err)
	}
	defer rows.Close()

	centers := []*models.Center{}
	for rows.Next() {
		center, err := scanCenter(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning center row during get all")
			return nil, fmt.Errorf("error scanning center row: %w", err)
		}
		centers = append(centers, center)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating center rows: %w", err)
	}

	return centers, nil
}

// SetBlocked updates the blocked flag for a center code. The update is
// idempotent and, matching the existing contract, succeeds even when
// the code matches no row.
func (r *CenterRepository) SetBlocked(ctx context.Context, code string, blocked bool) error {
	sql, args, err := r.sb.Update("centers").
		Set("is_blocked", blocked).
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build block center query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("code", code).Msg("Error executing block center query")
		return fmt.Errorf("error updating center blocked flag: %w", err)
	}

	return nil
}

// Count returns the number of center rows
func (r *CenterRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("centers").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count centers query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting centers")
		return 0, fmt.Errorf("error counting centers: %w", err)
	}

	return count, nil
}
