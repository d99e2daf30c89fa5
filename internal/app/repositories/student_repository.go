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

var studentColumns = []string{
	"id", "roll", "username", "password", "name", "father", "dob", "course", "center",
	"fees_total", "fees_paid", "attendance", "mobile", "img", "status", "created_at",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.Roll, &s.Username, &s.Password, &s.Name, &s.Father, &s.DOB,
		&s.Course, &s.Center, &s.FeesTotal, &s.FeesPaid, &s.Attendance, &s.Mobile,
		&s.Img, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// RollExists checks whether a roll number is already taken. The caller's
// check-then-insert is not atomic; the unique index on roll is the backstop.
func (r *StudentRepository) RollExists(ctx context.Context, roll string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(squirrel.Eq{"roll": roll}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build roll existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("roll", roll).Msg("Error checking roll existence")
		return false, fmt.Errorf("error checking roll existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new student row
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("roll", "username", "password", "name", "father", "dob", "course",
			"center", "fees_total", "fees_paid", "attendance", "mobile", "img", "status").
		Values(student.Roll, student.Username, student.Password, student.Name,
			student.Father, student.DOB, student.Course, student.Center,
			student.FeesTotal, student.FeesPaid, student.Attendance, student.Mobile,
			student.Img, student.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrRollAlreadyExists
		}
		logger.Error().Err(err).Str("roll", student.Roll).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return student.ID, nil
}

// GetByCredentials selects the student whose username and password both match exactly
func (r *StudentRepository) GetByCredentials(ctx context.Context, username, password string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"username": username, "password": password}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student credentials query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidCredentials
		}
		logger.Error().Err(err).Str("username", username).Msg("Error querying student credentials")
		return nil, fmt.Errorf("error querying student credentials: %w", err)
	}

	return student, nil
}

// GetByRoll retrieves a student by roll number
func (r *StudentRepository) GetByRoll(ctx context.Context, roll string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"roll": roll}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("roll", roll).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by roll: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students, newest first
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	return r.list(ctx, nil)
}

// GetByCenter retrieves the roster of one center, newest first
func (r *StudentRepository) GetByCenter(ctx context.Context, centerCode string) ([]*models.Student, error) {
	return r.list(ctx, squirrel.Eq{"center": centerCode})
}

func (r *StudentRepository) list(ctx context.Context, where interface{}) ([]*models.Student, error) {
	builder := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("created_at DESC")
	if where != nil {
		builder = builder.Where(where)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row during list")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// GetFees reads the current fee figures for a roll number
func (r *StudentRepository) GetFees(ctx context.Context, roll string) (paid int64, total int64, err error) {
	sql, args, err := r.sb.Select("fees_paid", "fees_total").
		From("students").
		Where(squirrel.Eq{"roll": roll}).
		Limit(1).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build get fees query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&paid, &total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("roll", roll).Msg("Error querying student fees")
		return 0, 0, fmt.Errorf("error querying student fees: %w", err)
	}

	return paid, total, nil
}

// UpdateFeesPaid writes the new running total for a roll number.
// Read and write are two separate round trips; concurrent collections
// for the same roll can interleave and lose an update.
func (r *StudentRepository) UpdateFeesPaid(ctx context.Context, roll string, newPaid int64) error {
	sql, args, err := r.sb.Update("students").
		Set("fees_paid", newPaid).
		Where(squirrel.Eq{"roll": roll}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update fees query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("roll", roll).Msg("Error executing update fees query")
		return fmt.Errorf("error updating student fees: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Count returns the number of student rows
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("students").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting students")
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}
