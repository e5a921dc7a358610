package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/controllers"
	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/middleware"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/applications", controllers.ListAllApplications)
		admin.PUT("/applications/:id/status", controllers.UpdateApplicationStatus)
		admin.GET("/partners/pending", controllers.ListPendingPartners)
		admin.PUT("/partners/:id/approve", controllers.ApprovePartner)
	}
}
