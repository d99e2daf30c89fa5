package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lifeway/lms-backend/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", apperrors.NewValidationError("missing field"), http.StatusBadRequest},
		{"unknown role", apperrors.ErrUnknownRole, http.StatusBadRequest},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"blocked center", apperrors.ErrCenterBlocked, http.StatusForbidden},
		{"student missing", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"center missing", apperrors.ErrCenterNotFound, http.StatusNotFound},
		{"duplicate roll", apperrors.ErrRollAlreadyExists, http.StatusConflict},
		{"duplicate center", apperrors.ErrCenterAlreadyExists, http.StatusConflict},
		{"unexpected", errors.New("pool exhausted"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(ctx, c.err)

			if w.Code != c.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, c.wantStatus)
			}

			var body map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if success, _ := body["success"].(bool); success {
				t.Error("success = true, want false")
			}
			if msg, _ := body["message"].(string); msg == "" {
				t.Error("message is empty")
			}
		})
	}
}

func TestHandleAPIErrorCustomMessageWins(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/test", nil)

	err := apperrors.NewCustomError(apperrors.ErrRollAlreadyExists, `Roll Number "X1" already exists!`)
	HandleAPIError(ctx, err)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["message"] != `Roll Number "X1" already exists!` {
		t.Errorf("message = %q, want the custom message", body["message"])
	}
}

func TestHandleAPIErrorInternalMessageIsGeneric(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(ctx, errors.New("connection refused: 10.0.0.3"))

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["message"] != "Server Error! Please try again later." {
		t.Errorf("message = %q, internal detail must not leak", body["message"])
	}
}
