package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/middleware"
	"github.com/lifeway/lms-backend/internal/pkg/apperrors"
)

// softFailOrError handles the public lookup endpoints, which answer a
// missing record with HTTP 200 and success=false rather than 404.
// Anything other than a not-found still goes through the normal mapping.
func softFailOrError(ctx *gin.Context, err error, fallback string) {
	if errors.Is(err, apperrors.ErrStudentNotFound) ||
		errors.Is(err, apperrors.ErrCenterNotFound) ||
		errors.Is(err, apperrors.ErrResourceNotFound) {
		ctx.JSON(http.StatusOK, dto.NewErrorResponse(apperrors.Message(err, fallback)))
		return
	}
	middleware.HandleAPIError(ctx, err)
}
