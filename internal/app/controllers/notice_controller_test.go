package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/app/models/dto"
)

type stubNoticeService struct {
	notice  *models.Notice
	notices []*models.Notice
	err     error
}

func (s *stubNoticeService) Publish(ctx context.Context, req dto.CreateNoticeRequest) (*models.Notice, error) {
	return s.notice, s.err
}

func (s *stubNoticeService) GetActiveNotices(ctx context.Context) ([]*models.Notice, error) {
	return s.notices, s.err
}

func newNoticeRouter(svc *stubNoticeService) *gin.Engine {
	router := gin.New()
	controller := NewNoticeController(svc)
	router.GET("/api/notices", controller.List)
	router.POST("/api/notices", controller.Publish)
	return router
}

func TestListNotices(t *testing.T) {
	svc := &stubNoticeService{notices: []*models.Notice{
		{ID: 1, Title: "Admissions open", Body: "New batch starts Monday", IsActive: true},
		{ID: 2, Title: "Holiday", IsActive: true},
	}}
	router := newNoticeRouter(svc)

	w := get(router, "/api/notices")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	notices := body["notices"].([]interface{})
	if len(notices) != 2 {
		t.Fatalf("notices = %v, want 2 entries", notices)
	}
	first := notices[0].(map[string]interface{})
	if first["title"] != "Admissions open" {
		t.Errorf("title = %q", first["title"])
	}
}

func TestPublishNotice(t *testing.T) {
	svc := &stubNoticeService{notice: &models.Notice{
		ID: 3, Title: "Exam schedule", Body: "Results on Friday", IsActive: true,
	}}
	router := newNoticeRouter(svc)

	w := postJSON(router, "/api/notices", `{"title":"Exam schedule","body":"Results on Friday"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != `Notice "Exam schedule" published!` {
		t.Errorf("message = %q", body["message"])
	}
}

func TestPublishNoticeMissingTitle(t *testing.T) {
	router := newNoticeRouter(&stubNoticeService{})

	w := postJSON(router, "/api/notices", `{"body":"no title here"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "Notice title is required!" {
		t.Errorf("message = %q", body["message"])
	}
}
