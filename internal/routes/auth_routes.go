package routes

import (
	"github.com/gin-gonic/gin"

	"apt_planner/internal/controllers"
	"apt_planner/internal/middleware"
)

func AuthRoutes(r *gin.Engine, auth *controllers.AuthController) {
	group := r.Group("/auth")
	{
		group.POST("/signup", auth.Signup)
		group.POST("/login", auth.Login)
		group.GET("/dev", auth.Dev)
		group.GET("/me", middleware.OptionalAuth(), auth.Me)
		group.POST("/logout", auth.Logout)
	}
}
