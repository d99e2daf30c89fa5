package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lifeway/lms-backend/internal/app/models/dto"
)

// RequestIDKey is the context key under which the request id is stored.
const RequestIDKey = "requestID"

// RequestLogger assigns a request id and logs one line per request with
// method, path, status and latency.
func RequestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		lgr.Info().
			Str("requestID", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// Recovery converts a handler panic into a 500 envelope instead of
// killing the connection.
func Recovery(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				lgr.Error().
					Interface("panic", r).
					Str("path", c.Request.URL.Path).
					Msg("Recovered from handler panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewErrorResponse("Server Error! Please try again later."))
			}
		}()
		c.Next()
	}
}
