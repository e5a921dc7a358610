package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/controllers"
	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/middleware"
)

func UploadRoutes(r *gin.Engine) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.RequireSession())
	{
		uploads.POST("", controllers.UploadFile)
	}
}
