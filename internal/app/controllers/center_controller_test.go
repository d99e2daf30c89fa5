package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/pkg/apperrors"
)

type stubCenterService struct {
	center     *models.Center
	centers    []*models.Center
	centerData *dto.CenterDataResponse
	verified   dto.VerifiedCenter
	err        error

	blockedCode string
	blockedFlag bool
}

func (s *stubCenterService) CreateCenter(ctx context.Context, req dto.CreateCenterRequest) (*models.Center, error) {
	return s.center, s.err
}

func (s *stubCenterService) GetAllCenters(ctx context.Context) ([]*models.Center, error) {
	return s.centers, s.err
}

func (s *stubCenterService) GetCenterData(ctx context.Context, code string) (*dto.CenterDataResponse, error) {
	return s.centerData, s.err
}

func (s *stubCenterService) SetBlocked(ctx context.Context, code string, blocked bool) error {
	s.blockedCode = code
	s.blockedFlag = blocked
	return s.err
}

func (s *stubCenterService) VerifyCenter(ctx context.Context, code string) (dto.VerifiedCenter, error) {
	return s.verified, s.err
}

func newCenterRouter(svc *stubCenterService) *gin.Engine {
	router := gin.New()
	controller := NewCenterController(svc)
	router.POST("/api/centers", controller.CreateCenter)
	router.GET("/api/centers", controller.GetAllCenters)
	router.GET("/api/center-data/:code", controller.GetCenterData)
	router.PUT("/api/centers/:code/block", controller.BlockCenter)
	router.GET("/api/verify-center/:code", controller.VerifyCenter)
	return router
}

func TestCreateCenterSuccess(t *testing.T) {
	svc := &stubCenterService{center: &models.Center{
		Code: "BI-1234", Username: "BI-1234", Name: "Patna Skill Hub", State: "Bihar",
	}}
	router := newCenterRouter(svc)

	w := postJSON(router, "/api/centers",
		`{"name":"Patna Skill Hub","password":"pw","state":"Bihar"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "Center Created! Code: BI-1234" {
		t.Errorf("message = %q", body["message"])
	}
	center := body["center"].(map[string]interface{})
	if center["code"] != "BI-1234" || center["username"] != "BI-1234" {
		t.Errorf("center = %v, want code doubling as username", center)
	}
	if _, leaked := center["password"]; leaked {
		t.Error("password leaked into the response payload")
	}
}

func TestCreateCenterMissingState(t *testing.T) {
	router := newCenterRouter(&stubCenterService{})

	w := postJSON(router, "/api/centers", `{"name":"Hub","password":"pw"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "State, Center Name, and Password are required!" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestGetCenterData(t *testing.T) {
	svc := &stubCenterService{centerData: &dto.CenterDataResponse{
		Success: true,
		Center:  &models.Center{Code: "BI-1234", Name: "Patna Skill Hub"},
		Students: []dto.RosterStudent{
			{Roll: "LW-2024-001", Name: "Ravi", FeesPaid: 2000, FeesTotal: 5000, Status: "Active"},
		},
		Stats: dto.RosterStats{TotalStudents: 1, ActiveStudents: 1, TotalCollected: 2000, TotalDues: 3000},
	}}
	router := newCenterRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/center-data/BI-1234", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	stats := body["stats"].(map[string]interface{})
	if stats["totalCollected"] != float64(2000) || stats["totalDues"] != float64(3000) {
		t.Errorf("stats = %v", stats)
	}
	if len(body["students"].([]interface{})) != 1 {
		t.Errorf("students = %v, want one row", body["students"])
	}
}

func TestBlockCenter(t *testing.T) {
	svc := &stubCenterService{}
	router := newCenterRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/centers/BI-1234/block",
		strings.NewReader(`{"blocked":true}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "Center BI-1234 BLOCKED successfully!" {
		t.Errorf("message = %q", body["message"])
	}
	if svc.blockedCode != "BI-1234" || !svc.blockedFlag {
		t.Errorf("service called with (%q, %v)", svc.blockedCode, svc.blockedFlag)
	}
}

func TestUnblockCenter(t *testing.T) {
	svc := &stubCenterService{}
	router := newCenterRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/centers/BI-1234/block",
		strings.NewReader(`{"blocked":false}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "Center BI-1234 UNBLOCKED successfully!" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestBlockCenterMissingFlag(t *testing.T) {
	router := newCenterRouter(&stubCenterService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/centers/BI-1234/block",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["message"] != "Blocked flag is required!" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestVerifyCenterMissingIsSoftFailure(t *testing.T) {
	svc := &stubCenterService{err: apperrors.NewCustomError(apperrors.ErrCenterNotFound,
		"Invalid Center Code. Not found in records.")}
	router := newCenterRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/verify-center/ZZ-0000", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false {
		t.Error("success = true, want false")
	}
	if body["message"] != "Invalid Center Code. Not found in records." {
		t.Errorf("message = %q", body["message"])
	}
}
