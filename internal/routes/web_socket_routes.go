package routes

import (
	"github.com/gin-gonic/gin"

	"apt_planner/internal/controllers"
)

func WebSocketRoutes(r *gin.Engine, alerts *controllers.AlertController) {
	ws := r.Group("/ws")
	{
		ws.GET("/alerts", alerts.StreamAlerts)
	}
}
