package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/app/services"
	"github.com/lifeway/lms-backend/internal/middleware"
)

// PublicController handles the unauthenticated site surface: health,
// gallery, result lookup and the dashboard counters.
type PublicController struct {
	publicService services.PublicService
}

// NewPublicController creates a new PublicController
func NewPublicController(publicService services.PublicService) *PublicController {
	return &PublicController{
		publicService: publicService,
	}
}

// Health handles GET /api and doubles as a human-readable endpoint index
func (c *PublicController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "online",
		"message":   "Lifeway LMS Server is Running!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"endpoints": gin.H{
			"login":          "POST /api/login",
			"centerData":     "GET /api/center-data/:code",
			"courses":        "GET /api/courses",
			"gallery":        "GET /api/gallery",
			"notices":        "GET /api/notices",
			"suggestions":    "POST /api/suggestions",
			"allSuggestions": "GET /api/suggestions",
			"addStudent":     "POST /api/students",
			"addCenter":      "POST /api/centers",
			"addCourse":      "POST /api/courses",
			"allStudents":    "GET /api/students",
			"allCenters":     "GET /api/centers",
			"verifyCert":     "GET /api/verify-certificate/:roll",
			"verifyCenter":   "GET /api/verify-center/:code",
			"result":         "GET /api/result/:roll",
			"stats":          "GET /api/stats",
		},
	})
}

// Gallery handles GET /api/gallery
func (c *PublicController) Gallery(ctx *gin.Context) {
	images, err := c.publicService.GetGallery(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GalleryResponse{
		Success: true,
		Gallery: images,
	})
}

// Result handles GET /api/result/:roll. A missing roll is a soft
// failure: HTTP 200 with success=false.
func (c *PublicController) Result(ctx *gin.Context) {
	result, err := c.publicService.GetResult(ctx, ctx.Param("roll"))
	if err != nil {
		softFailOrError(ctx, err, "Roll Number Not Found.")
		return
	}

	ctx.JSON(http.StatusOK, dto.ResultResponse{
		Success: true,
		Result:  result,
	})
}

// Stats handles GET /api/stats
func (c *PublicController) Stats(ctx *gin.Context) {
	stats, err := c.publicService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatsResponse{
		Success: true,
		Stats:   stats,
	})
}
