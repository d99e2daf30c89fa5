package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/app/services"
	"github.com/lifeway/lms-backend/internal/middleware"
)

// StudentController handles admissions, listing, fee collection and
// the public certificate lookup.
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles POST /api/students (center admission)
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingErrorResponse(ctx, "Roll, Name, Course, Center and Password are all required!")
		return
	}

	student, err := c.studentService.CreateStudent(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentCreatedResponse{
		Success: true,
		Message: fmt.Sprintf("Student %q added successfully with Roll: %s", req.Name, req.Roll),
		Student: student,
	})
}

// GetAllStudents handles GET /api/students
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{
		Success:  true,
		Students: students,
	})
}

// CollectFee handles POST /api/collect-fee. The success message embeds
// the new running balance.
func (c *StudentController) CollectFee(ctx *gin.Context) {
	var req dto.CollectFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingErrorResponse(ctx, "Roll Number and Amount are both required!")
		return
	}

	newPaid, total, err := c.studentService.CollectFee(ctx, req.Roll, req.Amount)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(
		fmt.Sprintf("₹%d collected for %s. New balance: ₹%d/%d",
			req.Amount, req.Roll, newPaid, total)))
}

// VerifyCertificate handles GET /api/verify-certificate/:roll. A
// missing roll is a soft failure: HTTP 200 with success=false.
func (c *StudentController) VerifyCertificate(ctx *gin.Context) {
	student, err := c.studentService.VerifyCertificate(ctx, ctx.Param("roll"))
	if err != nil {
		softFailOrError(ctx, err, "Record Not Found. This Roll Number does not exist.")
		return
	}

	ctx.JSON(http.StatusOK, dto.VerifyCertificateResponse{
		Success: true,
		Student: student,
	})
}
