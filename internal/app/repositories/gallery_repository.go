package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/pkg/logger"
)

// GalleryRepository handles gallery database operations
type GalleryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a gallery row. Used by seeding only.
func (r *GalleryRepository) Create(ctx context.Context, image *models.GalleryImage) (int64, error) {
	sql, args, err := r.sb.Insert("gallery").
		Columns("title", "img", "is_active").
		Values(image.Title, image.Img, true).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create gallery query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&image.ID, &image.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create gallery query")
		return 0, fmt.Errorf("error creating gallery image: %w", err)
	}

	return image.ID, nil
}

// GetActive retrieves active gallery images, newest first
func (r *GalleryRepository) GetActive(ctx context.Context) ([]*models.GalleryImage, error) {
	sql, args, err := r.sb.Select("id", "title", "img", "is_active", "created_at").
		From("gallery").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get gallery query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get gallery query")
		return nil, fmt.Errorf("error querying gallery: %w", err)
	}
	defer rows.Close()

	images := []*models.GalleryImage{}
	for rows.Next() {
		g := &models.GalleryImage{}
		if err := rows.Scan(&g.ID, &g.Title, &g.Img, &g.IsActive, &g.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning gallery row")
			return nil, fmt.Errorf("error scanning gallery row: %w", err)
		}
		images = append(images, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gallery rows: %w", err)
	}

	return images, nil
}

// CountAll returns the number of gallery rows, active or not
func (r *GalleryRepository) CountAll(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("gallery").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count gallery query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting gallery rows")
		return 0, fmt.Errorf("error counting gallery rows: %w", err)
	}

	return count, nil
}
