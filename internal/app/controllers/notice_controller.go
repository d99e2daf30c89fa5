package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/app/services"
	"github.com/lifeway/lms-backend/internal/middleware"
)

// NoticeController handles notice publishing and the public listing
type NoticeController struct {
	noticeService services.NoticeService
}

// NewNoticeController creates a new NoticeController
func NewNoticeController(noticeService services.NoticeService) *NoticeController {
	return &NoticeController{
		noticeService: noticeService,
	}
}

// List handles GET /api/notices
func (c *NoticeController) List(ctx *gin.Context) {
	notices, err := c.noticeService.GetActiveNotices(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NoticeListResponse{
		Success: true,
		Notices: notices,
	})
}

// Publish handles POST /api/notices
func (c *NoticeController) Publish(ctx *gin.Context) {
	var req dto.CreateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingErrorResponse(ctx, "Notice title is required!")
		return
	}

	notice, err := c.noticeService.Publish(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NoticeCreatedResponse{
		Success: true,
		Message: fmt.Sprintf("Notice %q published!", notice.Title),
		Notice:  notice,
	})
}
