package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeway/lms-backend/internal/app/controllers"
	"github.com/lifeway/lms-backend/internal/app/models/dto"
)

// Controllers groups every controller the router needs.
type Controllers struct {
	Auth       *controllers.AuthController
	Center     *controllers.CenterController
	Student    *controllers.StudentController
	Course     *controllers.CourseController
	Suggestion *controllers.SuggestionController
	Notice     *controllers.NoticeController
	Public     *controllers.PublicController
}

// SetupRoutes registers every API route on the given engine.
func SetupRoutes(router *gin.Engine, c Controllers) {
	router.GET("/", c.Public.Health)

	api := router.Group("/api")
	{
		api.GET("", c.Public.Health)

		api.POST("/login", c.Auth.Login)

		api.POST("/centers", c.Center.CreateCenter)
		api.GET("/centers", c.Center.GetAllCenters)
		api.GET("/center-data/:code", c.Center.GetCenterData)
		api.PUT("/centers/:code/block", c.Center.BlockCenter)
		api.GET("/verify-center/:code", c.Center.VerifyCenter)

		api.POST("/students", c.Student.CreateStudent)
		api.GET("/students", c.Student.GetAllStudents)
		api.POST("/collect-fee", c.Student.CollectFee)
		api.GET("/verify-certificate/:roll", c.Student.VerifyCertificate)

		api.GET("/courses", c.Course.GetCourses)
		api.POST("/courses", c.Course.CreateCourse)

		api.POST("/suggestions", c.Suggestion.Submit)
		api.GET("/suggestions", c.Suggestion.List)
		api.DELETE("/suggestions/:id", c.Suggestion.Delete)
		api.DELETE("/suggestions", c.Suggestion.Clear)

		api.GET("/notices", c.Notice.List)
		api.POST("/notices", c.Notice.Publish)

		api.GET("/gallery", c.Public.Gallery)
		api.GET("/result/:roll", c.Public.Result)
		api.GET("/stats", c.Public.Stats)
	}

	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			fmt.Sprintf("Route %q not found. Check /api/ endpoints.", ctx.Request.Method+" "+ctx.Request.URL.Path),
		))
	})
}
