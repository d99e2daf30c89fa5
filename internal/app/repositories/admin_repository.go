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

// AdminRepository handles admin credential rows
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByCredentials selects the admin whose username and password both
// match exactly. Passwords are plain text in the backing table.
func (r *AdminRepository) GetByCredentials(ctx context.Context, username, password string) (*models.Admin, error) {
	sql, args, err := r.sb.Select("id", "username", "password", "name").
		From("admins").
		Where(squirrel.Eq{"username": username, "password": password}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build admin credentials query: %w", err)
	}

	admin := &models.Admin{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.Username, &admin.Password, &admin.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidCredentials
		}
		logger.Error().Err(err).Str("username", username).Msg("Error querying admin credentials")
		return nil, fmt.Errorf("error querying admin credentials: %w", err)
	}

	return admin, nil
}

// Create inserts an admin row. Used by seeding only.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) (int64, error) {
	sql, args, err := r.sb.Insert("admins").
		Columns("username", "password", "name").
		Values(admin.Username, admin.Password, admin.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create admin query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrConflict
		}
		logger.Error().Err(err).Msg("Error executing create admin query")
		return 0, fmt.Errorf("error creating admin: %w", err)
	}

	return id, nil
}

// UsernameExists checks whether an admin username is already taken
func (r *AdminRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("admins").
		Where(squirrel.Eq{"username": username}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build admin existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("username", username).Msg("Error checking admin existence")
		return false, fmt.Errorf("error checking admin existence: %w", err)
	}

	return exists, nil
}
