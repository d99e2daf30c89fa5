package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/app/models/dto"
)

type stubSuggestionService struct {
	suggestion  *models.Suggestion
	suggestions []*models.Suggestion
	err         error

	deletedID int64
	cleared   bool
}

func (s *stubSuggestionService) Submit(ctx context.Context, req dto.CreateSuggestionRequest) (*models.Suggestion, error) {
	return s.suggestion, s.err
}

func (s *stubSuggestionService) GetAll(ctx context.Context) ([]*models.Suggestion, error) {
	return s.suggestions, s.err
}

func (s *stubSuggestionService) Delete(ctx context.Context, id int64) error {
	s.deletedID = id
	return s.err
}

func (s *stubSuggestionService) Clear(ctx context.Context) error {
	s.cleared = true
	return s.err
}

func newSuggestionRouter(svc *stubSuggestionService) *gin.Engine {
	router := gin.New()
	controller := NewSuggestionController(svc)
	router.POST("/api/suggestions", controller.Submit)
	router.GET("/api/suggestions", controller.List)
	router.DELETE("/api/suggestions/:id", controller.Delete)
	router.DELETE("/api/suggestions", controller.Clear)
	return router
}

func TestSubmitSuggestion(t *testing.T) {
	svc := &stubSuggestionService{suggestion: &models.Suggestion{
		ID: 7, Name: "Anonymous", Mobile: "N/A", Message: "More evening batches please",
	}}
	router := newSuggestionRouter(svc)

	w := postJSON(router, "/api/suggestions", `{"message":"More evening batches please"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "Suggestion sent successfully!" {
		t.Errorf("message = %q", body["message"])
	}
	data := body["data"].(map[string]interface{})
	if data["name"] != "Anonymous" || data["mobile"] != "N/A" {
		t.Errorf("data = %v, want anonymous placeholders", data)
	}
}

func TestSubmitSuggestionMissingMessage(t *testing.T) {
	router := newSuggestionRouter(&stubSuggestionService{})

	w := postJSON(router, "/api/suggestions", `{"name":"Ravi"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListSuggestionsCount(t *testing.T) {
	svc := &stubSuggestionService{suggestions: []*models.Suggestion{
		{ID: 1, Message: "a"}, {ID: 2, Message: "b"},
	}}
	router := newSuggestionRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/suggestions", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["count"] != float64(2) {
		t.Errorf("count = %v, want 2", body["count"])
	}
}

func TestDeleteSuggestion(t *testing.T) {
	svc := &stubSuggestionService{}
	router := newSuggestionRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/suggestions/42", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.deletedID != 42 {
		t.Errorf("deleted id = %d, want 42", svc.deletedID)
	}
}

func TestDeleteSuggestionBadID(t *testing.T) {
	router := newSuggestionRouter(&stubSuggestionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/suggestions/abc", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "Invalid suggestion id!" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestClearSuggestions(t *testing.T) {
	svc := &stubSuggestionService{}
	router := newSuggestionRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/suggestions", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !svc.cleared {
		t.Error("Clear was not called on the service")
	}
	body := decodeBody(t, w)
	if body["message"] != "All suggestions cleared!" {
		t.Errorf("message = %q", body["message"])
	}
}
