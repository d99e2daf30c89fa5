package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/pkg/apperrors"
)

type stubPublicService struct {
	gallery []*models.GalleryImage
	result  dto.Result
	stats   dto.SiteStats
	err     error
}

func (s *stubPublicService) GetGallery(ctx context.Context) ([]*models.GalleryImage, error) {
	return s.gallery, s.err
}

func (s *stubPublicService) GetResult(ctx context.Context, roll string) (dto.Result, error) {
	return s.result, s.err
}

func (s *stubPublicService) GetStats(ctx context.Context) (dto.SiteStats, error) {
	return s.stats, s.err
}

func newPublicRouter(svc *stubPublicService) *gin.Engine {
	router := gin.New()
	controller := NewPublicController(svc)
	router.GET("/", controller.Health)
	router.GET("/api/gallery", controller.Gallery)
	router.GET("/api/result/:roll", controller.Result)
	router.GET("/api/stats", controller.Stats)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newPublicRouter(&stubPublicService{})

	w := get(router, "/")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "online" {
		t.Errorf("status field = %q, want online", body["status"])
	}
	endpoints := body["endpoints"].(map[string]interface{})
	if endpoints["login"] != "POST /api/login" {
		t.Errorf("endpoint index = %v", endpoints)
	}
}

func TestGalleryEndpoint(t *testing.T) {
	svc := &stubPublicService{gallery: []*models.GalleryImage{
		{ID: 1, Title: "Campus", Img: "http://example.com/a.jpg", IsActive: true},
	}}
	router := newPublicRouter(svc)

	w := get(router, "/api/gallery")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if len(body["gallery"].([]interface{})) != 1 {
		t.Errorf("gallery = %v, want one image", body["gallery"])
	}
}

func TestResultEndpoint(t *testing.T) {
	svc := &stubPublicService{result: dto.Result{
		Roll:   "LW-2024-001",
		Name:   "Ravi Kumar",
		Course: "DCA",
		Marks:  dto.Marks{Theory: 85, Practical: 92, Viva: 88},
		Total:  "265 / 300",
		Grade:  "A+",
		Status: "PASS",
	}}
	router := newPublicRouter(svc)

	w := get(router, "/api/result/LW-2024-001")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	result := body["result"].(map[string]interface{})
	if result["total"] != "265 / 300" || result["grade"] != "A+" || result["status"] != "PASS" {
		t.Errorf("result = %v", result)
	}
	marks := result["marks"].(map[string]interface{})
	if marks["theory"] != float64(85) || marks["practical"] != float64(92) || marks["viva"] != float64(88) {
		t.Errorf("marks = %v", marks)
	}
}

func TestResultMissingRollIsSoftFailure(t *testing.T) {
	svc := &stubPublicService{err: apperrors.NewCustomError(apperrors.ErrStudentNotFound,
		"Roll Number Not Found.")}
	router := newPublicRouter(svc)

	w := get(router, "/api/result/NOPE")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Error("success = true, want false")
	}
	if body["message"] != "Roll Number Not Found." {
		t.Errorf("message = %q", body["message"])
	}
}

func TestStatsEndpoint(t *testing.T) {
	svc := &stubPublicService{stats: dto.SiteStats{
		TotalStudents: 120, TotalCenters: 8, TotalCourses: 5, TotalSuggestions: 14,
	}}
	router := newPublicRouter(svc)

	w := get(router, "/api/stats")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	stats := body["stats"].(map[string]interface{})
	if stats["totalStudents"] != float64(120) || stats["totalCenters"] != float64(8) {
		t.Errorf("stats = %v", stats)
	}
}
