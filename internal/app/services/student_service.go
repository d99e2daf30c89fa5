package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/app/repositories"
	"github.com/lifeway/lms-backend/internal/pkg/apperrors"
)

// DefaultStudentImg is the placeholder photo used when an admission
// carries no image URL.
const DefaultStudentImg = "https://via.placeholder.com/150"

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	CollectFee(ctx context.Context, roll string, amount int64) (newPaid int64, total int64, err error)
	VerifyCertificate(ctx context.Context, roll string) (dto.VerifiedStudent, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// NormalizeRoll trims and uppercases a roll number; rolls are stored and
// matched in this form everywhere.
func NormalizeRoll(roll string) string {
	return strings.ToUpper(strings.TrimSpace(roll))
}

// CreateStudent admits a student. The duplicate-roll check and the insert
// are two separate round trips; the unique index on students.roll turns
// an interleaved double admission into ErrRollAlreadyExists.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	roll := NormalizeRoll(req.Roll)

	exists, err := s.studentRepo.RollExists(ctx, roll)
	if err != nil {
		return nil, fmt.Errorf("error checking roll number: %w", err)
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrRollAlreadyExists,
			fmt.Sprintf("Roll Number %q already exists!", req.Roll))
	}

	img := req.Img
	if img == "" {
		img = DefaultStudentImg
	}

	student := &models.Student{
		Roll:       roll,
		Username:   roll, // username = roll number
		Password:   req.Password,
		Name:       strings.TrimSpace(req.Name),
		Father:     req.Father,
		DOB:        req.DOB,
		Course:     req.Course,
		Center:     req.Center,
		FeesTotal:  req.FeesTotal,
		FeesPaid:   0,
		Attendance: 0,
		Mobile:     req.Mobile,
		Img:        img,
		Status:     models.StudentStatusActive,
	}

	if _, err := s.studentRepo.Create(ctx, student); err != nil {
		if errors.Is(err, apperrors.ErrRollAlreadyExists) {
			return nil, apperrors.NewCustomError(apperrors.ErrRollAlreadyExists,
				fmt.Sprintf("Roll Number %q already exists!", req.Roll))
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return student, nil
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// CollectFee adds amount to the student's running fees_paid total.
// Read and write are two unsynchronized round trips: concurrent
// collections for the same roll can lose an update.
func (s *studentServiceImpl) CollectFee(ctx context.Context, roll string, amount int64) (int64, int64, error) {
	roll = NormalizeRoll(roll)

	paid, total, err := s.studentRepo.GetFees(ctx, roll)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return 0, 0, apperrors.NewCustomError(apperrors.ErrStudentNotFound,
				fmt.Sprintf("Student with Roll %q not found!", roll))
		}
		return 0, 0, fmt.Errorf("error reading student fees: %w", err)
	}

	newPaid := paid + amount
	if err := s.studentRepo.UpdateFeesPaid(ctx, roll, newPaid); err != nil {
		return 0, 0, fmt.Errorf("error updating student fees: %w", err)
	}

	return newPaid, total, nil
}

// VerifyCertificate is the public lookup by roll number
func (s *studentServiceImpl) VerifyCertificate(ctx context.Context, roll string) (dto.VerifiedStudent, error) {
	student, err := s.studentRepo.GetByRoll(ctx, NormalizeRoll(roll))
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return dto.VerifiedStudent{}, apperrors.NewCustomError(apperrors.ErrStudentNotFound,
				"Record Not Found. This Roll Number does not exist.")
		}
		return dto.VerifiedStudent{}, fmt.Errorf("error verifying certificate: %w", err)
	}

	return dto.VerifiedStudent{
		Roll:   student.Roll,
		Name:   student.Name,
		Course: student.Course,
		Status: student.Status,
		Center: student.Center,
	}, nil
}
