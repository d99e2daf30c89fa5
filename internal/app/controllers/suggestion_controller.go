package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/app/services"
	"github.com/lifeway/lms-backend/internal/middleware"
)

// SuggestionController handles the public feedback box and its admin views
type SuggestionController struct {
	suggestionService services.SuggestionService
}

// NewSuggestionController creates a new SuggestionController
func NewSuggestionController(suggestionService services.SuggestionService) *SuggestionController {
	return &SuggestionController{
		suggestionService: suggestionService,
	}
}

// Submit handles POST /api/suggestions (public)
func (c *SuggestionController) Submit(ctx *gin.Context) {
	var req dto.CreateSuggestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingErrorResponse(ctx, "Suggestion message is required!")
		return
	}

	suggestion, err := c.suggestionService.Submit(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestionCreatedResponse{
		Success: true,
		Message: "Suggestion sent successfully!",
		Data:    suggestion,
	})
}

// List handles GET /api/suggestions (admin)
func (c *SuggestionController) List(ctx *gin.Context) {
	suggestions, err := c.suggestionService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestionListResponse{
		Success:     true,
		Suggestions: suggestions,
		Count:       len(suggestions),
	})
}

// Delete handles DELETE /api/suggestions/:id (admin)
func (c *SuggestionController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.BindingErrorResponse(ctx, "Invalid suggestion id!")
		return
	}

	if err := c.suggestionService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Suggestion deleted!"))
}

// Clear handles DELETE /api/suggestions (admin)
func (c *SuggestionController) Clear(ctx *gin.Context) {
	if err := c.suggestionService.Clear(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("All suggestions cleared!"))
}
