package dto

import "github.com/lifeway/lms-backend/internal/app/models"

// CreateStudentRequest is a center admission. The roll is trimmed and
// uppercased server-side and becomes the login username.
type CreateStudentRequest struct {
	Roll      string `json:"roll" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Course    string `json:"course" binding:"required"`
	Center    string `json:"center" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Father    string `json:"father"`
	DOB       string `json:"dob"`
	FeesTotal int64  `json:"fees_total"`
	Mobile    string `json:"mobile"`
	Img       string `json:"img"`
}

// StudentCreatedResponse returns the inserted row
type StudentCreatedResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Student *models.Student `json:"student"`
}

// StudentListResponse is the admin list-all payload
type StudentListResponse struct {
	Success  bool              `json:"success"`
	Students []*models.Student `json:"students"`
}

// CollectFeeRequest records a fee payment against a roll number
type CollectFeeRequest struct {
	Roll   string `json:"roll" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// VerifiedStudent is the public certificate verification shape
type VerifiedStudent struct {
	Roll   string `json:"roll"`
	Name   string `json:"name"`
	Course string `json:"course"`
	Status string `json:"status"`
	Center string `json:"center"`
}

// VerifyCertificateResponse is the public certificate lookup payload
type VerifyCertificateResponse struct {
	Success bool            `json:"success"`
	Student VerifiedStudent `json:"student"`
}
