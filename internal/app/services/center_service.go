package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/app/repositories"
	"github.com/lifeway/lms-backend/internal/pkg/apperrors"
)

// CenterService defines the interface for center-related operations
type CenterService interface {
	CreateCenter(ctx context.Context, req dto.CreateCenterRequest) (*models.Center, error)
	GetAllCenters(ctx context.Context) ([]*models.Center, error)
	GetCenterData(ctx context.Context, code string) (*dto.CenterDataResponse, error)
	SetBlocked(ctx context.Context, code string, blocked bool) error
	VerifyCenter(ctx context.Context, code string) (dto.VerifiedCenter, error)
}

// centerServiceImpl implements the CenterService interface
type centerServiceImpl struct {
	centerRepo  *repositories.CenterRepository
	studentRepo *repositories.StudentRepository
}

// NewCenterService creates a new center service instance
func NewCenterService(centerRepo *repositories.CenterRepository, studentRepo *repositories.StudentRepository) CenterService {
	return &centerServiceImpl{
		centerRepo:  centerRepo,
		studentRepo: studentRepo,
	}
}

// GenerateCenterCode builds a center code from the state name: its first
// two letters uppercased plus a random 4-digit suffix. Uniqueness is not
// checked here; the unique index on centers.code catches collisions.
func GenerateCenterCode(state string) string {
	token := strings.ToUpper(strings.TrimSpace(state))
	if runes := []rune(token); len(runes) > 2 {
		token = string(runes[:2])
	}
	return fmt.Sprintf("%s-%d", token, 1000+rand.Intn(9000))
}

// ComputeRosterStats derives the fee figures for a center's roster
func ComputeRosterStats(students []*models.Student) dto.RosterStats {
	stats := dto.RosterStats{TotalStudents: len(students)}
	var totalFees int64
	for _, s := range students {
		stats.TotalCollected += s.FeesPaid
		totalFees += s.FeesTotal
		if s.Status == models.StudentStatusActive {
			stats.ActiveStudents++
		}
	}
	stats.TotalDues = totalFees - stats.TotalCollected
	return stats
}

// CreateCenter registers a new center with a generated code that doubles
// as the login username.
func (s *centerServiceImpl) CreateCenter(ctx context.Context, req dto.CreateCenterRequest) (*models.Center, error) {
	code := GenerateCenterCode(req.State)

	center := &models.Center{
		Code:     code,
		Username: code,
		Password: req.Password,
		Name:     strings.TrimSpace(req.Name),
		Director: req.Director,
		Location: req.Location,
		State:    req.State,
	}

	if _, err := s.centerRepo.Create(ctx, center); err != nil {
		if errors.Is(err, apperrors.ErrCenterAlreadyExists) {
			return nil, apperrors.NewCustomError(apperrors.ErrCenterAlreadyExists,
				fmt.Sprintf("Center code %s is already taken, please retry.", code))
		}
		return nil, fmt.Errorf("error creating center: %w", err)
	}

	return center, nil
}

// GetAllCenters retrieves all centers
func (s *centerServiceImpl) GetAllCenters(ctx context.Context) ([]*models.Center, error) {
	centers, err := s.centerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving centers: %w", err)
	}
	return centers, nil
}

// GetCenterData assembles the center dashboard payload: the center row,
// its roster and the derived fee stats. A missing center row is tolerated
// (the roster query still runs against the code).
func (s *centerServiceImpl) GetCenterData(ctx context.Context, code string) (*dto.CenterDataResponse, error) {
	center, err := s.centerRepo.GetByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrCenterNotFound) {
			return nil, fmt.Errorf("error retrieving center: %w", err)
		}
		center = &models.Center{}
	}

	students, err := s.studentRepo.GetByCenter(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("error retrieving center roster: %w", err)
	}

	roster := make([]dto.RosterStudent, 0, len(students))
	for _, st := range students {
		roster = append(roster, dto.NewRosterStudent(st))
	}

	return &dto.CenterDataResponse{
		Success:  true,
		Center:   center,
		Students: roster,
		Stats:    ComputeRosterStats(students),
	}, nil
}

// SetBlocked toggles the blocked flag for a center
func (s *centerServiceImpl) SetBlocked(ctx context.Context, code string, blocked bool) error {
	if err := s.centerRepo.SetBlocked(ctx, code, blocked); err != nil {
		return fmt.Errorf("error updating center blocked flag: %w", err)
	}
	return nil
}

// VerifyCenter is the public lookup by code (trimmed, uppercased)
func (s *centerServiceImpl) VerifyCenter(ctx context.Context, code string) (dto.VerifiedCenter, error) {
	center, err := s.centerRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, apperrors.ErrCenterNotFound) {
			return dto.VerifiedCenter{}, apperrors.NewCustomError(apperrors.ErrCenterNotFound,
				"Invalid Center Code. Not found in records.")
		}
		return dto.VerifiedCenter{}, fmt.Errorf("error verifying center: %w", err)
	}

	return dto.VerifiedCenter{
		Code:      center.Code,
		Name:      center.Name,
		State:     center.State,
		Director:  center.Director,
		IsBlocked: center.IsBlocked,
	}, nil
}
