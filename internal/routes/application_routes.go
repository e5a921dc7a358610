package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/controllers"
	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/middleware"
)

func ApplicationRoutes(r *gin.Engine) {
	apps := r.Group("/applications")
	apps.Use(middleware.RequireSession())
	{
		apps.POST("/loan", controllers.SubmitLoanApplication)
		apps.POST("/ca-service", controllers.SubmitCAServiceApplication)
		apps.POST("/government-scheme", controllers.SubmitGovernmentSchemeApplication)
		apps.GET("", controllers.GetMyApplications)
		apps.GET("/:id", controllers.GetApplication)
	}
}
