package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Lucifer-Aspire-A315/studio-sub000/internal/controllers"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", controllers.SignupUser)
		auth.POST("/login", controllers.LoginUser)
		auth.POST("/partner-signup", controllers.SignupPartner)
		auth.POST("/partner-login", controllers.LoginPartner)
		auth.POST("/logout", controllers.Logout)
		auth.GET("/session", controllers.SessionInfo)
	}
}
