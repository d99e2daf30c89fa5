package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/app/services"
	"github.com/lifeway/lms-backend/internal/middleware"
)

// AuthController handles the universal login endpoint
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login handles POST /api/login for all three roles. The response
// carries the role-shaped profile; the client keeps it, no token is
// issued.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingErrorResponse(ctx, "Role, Username and Password are all required!")
		return
	}

	profile, err := c.authService.Login(ctx, req.Role, req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("role", string(req.Role)).Str("username", req.Username).Msg("Login successful")
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login Successful!",
		User:    profile,
	})
}
