package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/app/repositories"
)

// Display defaults applied when a new course omits optional fields.
const (
	defaultCourseCategory    = "Computer"
	defaultCourseDescription = "Join now to upgrade your skills."
	defaultCourseEligibility = "10th Pass"
	defaultCourseImg         = "https://via.placeholder.com/400x250?text=Course"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetActiveCourses(ctx context.Context) ([]dto.CourseView, error)
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// GetActiveCourses retrieves active courses in the public listing shape
func (s *courseServiceImpl) GetActiveCourses(ctx context.Context) ([]dto.CourseView, error) {
	courses, err := s.courseRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	views := make([]dto.CourseView, 0, len(courses))
	for _, c := range courses {
		views = append(views, dto.NewCourseView(c))
	}
	return views, nil
}

// NewCourseFromRequest builds a course row from the create payload,
// filling display defaults for omitted optional fields.
func NewCourseFromRequest(req dto.CreateCourseRequest) *models.Course {
	course := &models.Course{
		Name:        strings.TrimSpace(req.Name),
		Duration:    req.Duration,
		Fee:         req.Fee,
		Category:    req.Category,
		Description: req.Description,
		Eligibility: req.Eligibility,
		Img:         req.Img,
	}

	if course.Fee == "" {
		course.Fee = "0"
	}
	if course.Category == "" {
		course.Category = defaultCourseCategory
	}
	if course.Description == "" {
		course.Description = defaultCourseDescription
	}
	if course.Eligibility == "" {
		course.Eligibility = defaultCourseEligibility
	}
	if course.Img == "" {
		course.Img = defaultCourseImg
	}

	return course
}

// CreateCourse publishes a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	course := NewCourseFromRequest(req)

	if _, err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return course, nil
}
