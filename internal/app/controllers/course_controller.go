package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/app/services"
	"github.com/lifeway/lms-backend/internal/middleware"
)

// CourseController handles the public course listing and admin course creation
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetCourses handles GET /api/courses (active courses only)
func (c *CourseController) GetCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetActiveCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseListResponse{
		Success: true,
		Courses: courses,
	})
}

// CreateCourse handles POST /api/courses
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingErrorResponse(ctx, "Course name is required!")
		return
	}

	course, err := c.courseService.CreateCourse(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseCreatedResponse{
		Success: true,
		Message: fmt.Sprintf("Course %q added!", course.Name),
		Course:  course,
	})
}
