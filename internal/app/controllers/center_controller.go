package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/app/services"
	"github.com/lifeway/lms-backend/internal/middleware"
)

// CenterController handles center registration, listing, the center
// dashboard payload and the block toggle.
type CenterController struct {
	centerService services.CenterService
}

// NewCenterController creates a new CenterController
func NewCenterController(centerService services.CenterService) *CenterController {
	return &CenterController{
		centerService: centerService,
	}
}

// CreateCenter handles POST /api/centers
func (c *CenterController) CreateCenter(ctx *gin.Context) {
	var req dto.CreateCenterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingErrorResponse(ctx, "State, Center Name, and Password are required!")
		return
	}

	center, err := c.centerService.CreateCenter(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CenterCreatedResponse{
		Success: true,
		Message: fmt.Sprintf("Center Created! Code: %s", center.Code),
		Center:  center,
	})
}

// GetAllCenters handles GET /api/centers
func (c *CenterController) GetAllCenters(ctx *gin.Context) {
	centers, err := c.centerService.GetAllCenters(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CenterListResponse{
		Success: true,
		Centers: centers,
	})
}

// GetCenterData handles GET /api/center-data/:code
func (c *CenterController) GetCenterData(ctx *gin.Context) {
	data, err := c.centerService.GetCenterData(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, data)
}

// BlockCenter handles PUT /api/centers/:code/block
func (c *CenterController) BlockCenter(ctx *gin.Context) {
	var req dto.BlockCenterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingErrorResponse(ctx, "Blocked flag is required!")
		return
	}

	code := ctx.Param("code")
	if err := c.centerService.SetBlocked(ctx, code, *req.Blocked); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	action := "UNBLOCKED"
	if *req.Blocked {
		action = "BLOCKED"
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse(
		fmt.Sprintf("Center %s %s successfully!", code, action)))
}

// VerifyCenter handles GET /api/verify-center/:code. A missing code is
// a soft failure: HTTP 200 with success=false.
func (c *CenterController) VerifyCenter(ctx *gin.Context) {
	center, err := c.centerService.VerifyCenter(ctx, ctx.Param("code"))
	if err != nil {
		softFailOrError(ctx, err, "Invalid Center Code. Not found in records.")
		return
	}

	ctx.JSON(http.StatusOK, dto.VerifyCenterResponse{
		Success: true,
		Center:  center,
	})
}
