package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(ginlogger.SetLogger())
	r.Use(gin.Recovery())

	AuthRoutes(r)
	ApplicationRoutes(r)
	AdminRoutes(r)
	UploadRoutes(r)

	return r
}
