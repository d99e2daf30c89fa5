package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/app/repositories"
	"github.com/lifeway/lms-backend/internal/pkg/apperrors"
)

// Demo mark sheet returned for every result lookup until a real marks
// table exists.
var demoMarks = dto.Marks{Theory: 85, Practical: 92, Viva: 88}

const (
	demoTotal  = "265 / 300"
	demoGrade  = "A+"
	demoStatus = "PASS"
)

// PublicService covers the unauthenticated site surface: gallery,
// result lookups and the aggregate counters.
type PublicService interface {
	GetGallery(ctx context.Context) ([]*models.GalleryImage, error)
	GetResult(ctx context.Context, roll string) (dto.Result, error)
	GetStats(ctx context.Context) (dto.SiteStats, error)
}

// publicServiceImpl implements the PublicService interface
type publicServiceImpl struct {
	galleryRepo    *repositories.GalleryRepository
	studentRepo    *repositories.StudentRepository
	centerRepo     *repositories.CenterRepository
	courseRepo     *repositories.CourseRepository
	suggestionRepo *repositories.SuggestionRepository
}

// NewPublicService creates a new public service instance
func NewPublicService(
	galleryRepo *repositories.GalleryRepository,
	studentRepo *repositories.StudentRepository,
	centerRepo *repositories.CenterRepository,
	courseRepo *repositories.CourseRepository,
	suggestionRepo *repositories.SuggestionRepository,
) PublicService {
	return &publicServiceImpl{
		galleryRepo:    galleryRepo,
		studentRepo:    studentRepo,
		centerRepo:     centerRepo,
		courseRepo:     courseRepo,
		suggestionRepo: suggestionRepo,
	}
}

// GetGallery retrieves active gallery images
func (s *publicServiceImpl) GetGallery(ctx context.Context) ([]*models.GalleryImage, error) {
	images, err := s.galleryRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving gallery: %w", err)
	}
	return images, nil
}

// GetResult looks up the student and attaches the synthetic mark sheet
func (s *publicServiceImpl) GetResult(ctx context.Context, roll string) (dto.Result, error) {
	student, err := s.studentRepo.GetByRoll(ctx, NormalizeRoll(roll))
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return dto.Result{}, apperrors.NewCustomError(apperrors.ErrStudentNotFound, "Roll Number Not Found.")
		}
		return dto.Result{}, fmt.Errorf("error retrieving result: %w", err)
	}

	return dto.Result{
		Roll:   student.Roll,
		Name:   student.Name,
		Father: student.Father,
		Course: student.Course,
		Center: student.Center,
		Marks:  demoMarks,
		Total:  demoTotal,
		Grade:  demoGrade,
		Status: demoStatus,
	}, nil
}

// GetStats gathers the dashboard counters. Four independent counts, one
// per table.
func (s *publicServiceImpl) GetStats(ctx context.Context) (dto.SiteStats, error) {
	var stats dto.SiteStats
	var err error

	if stats.TotalStudents, err = s.studentRepo.Count(ctx); err != nil {
		return stats, fmt.Errorf("error counting students: %w", err)
	}
	if stats.TotalCenters, err = s.centerRepo.Count(ctx); err != nil {
		return stats, fmt.Errorf("error counting centers: %w", err)
	}
	if stats.TotalCourses, err = s.courseRepo.Count(ctx); err != nil {
		return stats, fmt.Errorf("error counting courses: %w", err)
	}
	if stats.TotalSuggestions, err = s.suggestionRepo.Count(ctx); err != nil {
		return stats, fmt.Errorf("error counting suggestions: %w", err)
	}

	return stats, nil
}
