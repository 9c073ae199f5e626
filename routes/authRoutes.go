package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/thesuplementos/loja-api/controllers"
	"github.com/thesuplementos/loja-api/middlewares"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middlewares.OptionalAuth(), controllers.GetCurrentUser)
	}
}
