package routes

import (
	"github.com/gin-gonic/gin"

	"apt_planner/internal/middleware"
)

// APIRoutes are open to anonymous travellers; a valid token personalises
// trip plans and the first-trip coupon.
func APIRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.OptionalAuth())
	{
		api.GET("/locations", h.Locations.GetLocations)
		api.POST("/calculate-routes", h.Planner.CalculateRoutes)
		api.GET("/trip-plans", h.TripPlans.GetTripPlans)
		api.POST("/trip-plans", h.TripPlans.CreateTripPlan)
		api.GET("/dashboard/metrics", h.Dashboard.GetMetrics)
		api.GET("/service-alerts", h.Alerts.GetAlerts)
	}
}
