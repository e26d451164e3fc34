package routes

import (
	"github.com/gin-gonic/gin"

	"apt_planner/internal/controllers"
	"apt_planner/internal/middleware"
	"apt_planner/internal/models"
)

func AdminRoutes(r *gin.Engine, alerts *controllers.AlertController) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuthWithRole(models.RoleAdmin))
	{
		admin.POST("/alerts", alerts.CreateAlert)
	}
}
