package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new course row
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("name", "duration", "fee", "category", "description", "eligibility", "img", "is_active").
		Values(course.Name, course.Duration, course.Fee, course.Category,
			course.Description, course.Eligibility, course.Img, true).
		Suffix("RETURNING id, is_active, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.IsActive, &course.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Str("name", course.Name).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return course.ID, nil
}

// activeCoursesQuery filters out soft-deleted rows, newest first
func (r *CourseRepository) activeCoursesQuery() (string, []interface{}, error) {
	return r.sb.Select("id", "name", "duration", "fee", "category",
		"description", "eligibility", "img", "is_active", "created_at").
		From("courses").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		ToSql()
}

// GetActive retrieves active courses only, newest first
func (r *CourseRepository) GetActive(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.activeCoursesQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build get active courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get active courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		c := &models.Course{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Duration, &c.Fee, &c.Category,
			&c.Description, &c.Eligibility, &c.Img, &c.IsActive, &c.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning course row")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// Count returns the number of course rows
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("courses").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting courses")
		return 0, fmt.Errorf("error counting courses: %w", err)
	}

	return count, nil
}
