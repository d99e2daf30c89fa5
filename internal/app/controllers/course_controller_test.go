package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/app/models/dto"
)

type stubCourseService struct {
	views  []dto.CourseView
	course *models.Course
	err    error

	createdReq dto.CreateCourseRequest
}

func (s *stubCourseService) GetActiveCourses(ctx context.Context) ([]dto.CourseView, error) {
	return s.views, s.err
}

func (s *stubCourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	s.createdReq = req
	return s.course, s.err
}

func newCourseRouter(svc *stubCourseService) *gin.Engine {
	router := gin.New()
	controller := NewCourseController(svc)
	router.GET("/api/courses", controller.GetCourses)
	router.POST("/api/courses", controller.CreateCourse)
	return router
}

func TestGetCoursesListingShape(t *testing.T) {
	svc := &stubCourseService{views: []dto.CourseView{
		{ID: 1, Name: "DCA", Duration: "6 Months", Fee: "3500",
			Cat: "Computer", Desc: "Join now to upgrade your skills.", Elig: "10th Pass"},
	}}
	router := newCourseRouter(svc)

	w := get(router, "/api/courses")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	courses := body["courses"].([]interface{})
	if len(courses) != 1 {
		t.Fatalf("courses = %v, want 1 entry", courses)
	}
	first := courses[0].(map[string]interface{})
	if first["cat"] != "Computer" || first["elig"] != "10th Pass" {
		t.Errorf("course = %v, want abbreviated cat/elig keys", first)
	}
	if first["desc"] != "Join now to upgrade your skills." {
		t.Errorf("desc = %q", first["desc"])
	}
	// The listing view carries no is_active field at all
	if _, present := first["is_active"]; present {
		t.Errorf("course = %v, is_active must not leak into the listing", first)
	}
}

func TestGetCoursesEmptyListing(t *testing.T) {
	router := newCourseRouter(&stubCourseService{views: []dto.CourseView{}})

	w := get(router, "/api/courses")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if courses := body["courses"].([]interface{}); len(courses) != 0 {
		t.Errorf("courses = %v, want empty array", courses)
	}
}

func TestCreateCourse(t *testing.T) {
	svc := &stubCourseService{course: &models.Course{
		ID: 4, Name: "Tally Prime", Fee: "4000", IsActive: true,
	}}
	router := newCourseRouter(svc)

	w := postJSON(router, "/api/courses", `{"name":"Tally Prime","fee":"4000"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != `Course "Tally Prime" added!` {
		t.Errorf("message = %q", body["message"])
	}
	if svc.createdReq.Name != "Tally Prime" {
		t.Errorf("service received name %q", svc.createdReq.Name)
	}
}

func TestCreateCourseMissingName(t *testing.T) {
	router := newCourseRouter(&stubCourseService{})

	w := postJSON(router, "/api/courses", `{"fee":"4000"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "Course name is required!" {
		t.Errorf("message = %q", body["message"])
	}
}
