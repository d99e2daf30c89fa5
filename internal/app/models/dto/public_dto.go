package dto

import "github.com/lifeway/lms-backend/internal/app/models"

// Marks is the demo mark sheet embedded in a result. There is no real
// marks table yet; these values are fixed.
type Marks struct {
	Theory    int `json:"theory"`
	Practical int `json:"practical"`
	Viva      int `json:"viva"`
}

// Result is the public result lookup shape
type Result struct {
	Roll   string `json:"roll"`
	Name   string `json:"name"`
	Father string `json:"father"`
	Course string `json:"course"`
	Center string `json:"center"`
	Marks  Marks  `json:"marks"`
	Total  string `json:"total"`
	Grade  string `json:"grade"`
	Status string `json:"status"`
}

// ResultResponse is the public result payload
type ResultResponse struct {
	Success bool   `json:"success"`
	Result  Result `json:"result"`
}

// SiteStats carries the admin dashboard counters
type SiteStats struct {
	TotalStudents    int64 `json:"totalStudents"`
	TotalCenters     int64 `json:"totalCenters"`
	TotalCourses     int64 `json:"totalCourses"`
	TotalSuggestions int64 `json:"totalSuggestions"`
}

// StatsResponse is the aggregate counts payload
type StatsResponse struct {
	Success bool      `json:"success"`
	Stats   SiteStats `json:"stats"`
}

// GalleryResponse is the public gallery payload
type GalleryResponse struct {
	Success bool                   `json:"success"`
	Gallery []*models.GalleryImage `json:"gallery"`
}

// CreateNoticeRequest publishes a new notice
type CreateNoticeRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
}

// NoticeCreatedResponse returns the inserted row
type NoticeCreatedResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Notice  *models.Notice `json:"notice"`
}

// NoticeListResponse is the public notices payload
type NoticeListResponse struct {
	Success bool             `json:"success"`
	Notices []*models.Notice `json:"notices"`
}
