package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/pkg/apperrors"
	"github.com/lifeway/lms-backend/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the error taxonomy: 400
// validation, 401 bad credentials, 403 blocked, 404 missing, 409
// duplicate, 500 anything else. The response body is always the
// uniform {success:false, message} envelope.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrUnknownRole):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			apperrors.Message(err, "Invalid request!")))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			apperrors.Message(err, "Invalid credentials!")))

	case errors.Is(err, apperrors.ErrCenterBlocked):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			apperrors.Message(err, "This center has been blocked by Admin. Contact HQ.")))

	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrCenterNotFound),
		errors.Is(err, apperrors.ErrSuggestionNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			apperrors.Message(err, "Record not found!")))

	case errors.Is(err, apperrors.ErrRollAlreadyExists),
		errors.Is(err, apperrors.ErrCenterAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			apperrors.Message(err, "Record already exists!")))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			"Server Error! Please try again later."))
	}
}

// BindingErrorResponse turns a gin binding failure into a 400 envelope
func BindingErrorResponse(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message))
}
