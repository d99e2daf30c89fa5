package dto

import "github.com/lifeway/lms-backend/internal/app/models"

// CreateCourseRequest publishes a new course. Everything except the
// name gets a display default when omitted.
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required"`
	Duration    string `json:"duration"`
	Fee         string `json:"fee"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	Img         string `json:"img"`
}

// CourseView is the abbreviated public listing shape
type CourseView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Fee      string `json:"fee"`
	Cat      string `json:"cat"`
	Desc     string `json:"desc"`
	Elig     string `json:"elig"`
	Img      string `json:"img"`
}

// CourseListResponse is the public active-courses payload
type CourseListResponse struct {
	Success bool         `json:"success"`
	Courses []CourseView `json:"courses"`
}

// CourseCreatedResponse returns the inserted row
type CourseCreatedResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Course  *models.Course `json:"course"`
}

// NewCourseView maps a course row to the public listing shape
func NewCourseView(c *models.Course) CourseView {
	return CourseView{
		ID:       c.ID,
		Name:     c.Name,
		Duration: c.Duration,
		Fee:      c.Fee,
		Cat:      c.Category,
		Desc:     c.Description,
		Elig:     c.Eligibility,
		Img:      c.Img,
	}
}
