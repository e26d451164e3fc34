package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"apt_planner/internal/controllers"
	"apt_planner/internal/middleware"
)

// Handlers bundles the controllers the router mounts.
type Handlers struct {
	Auth      *controllers.AuthController
	Locations *controllers.LocationController
	Planner   *controllers.PlannerController
	TripPlans *controllers.TripPlanController
	Dashboard *controllers.DashboardController
	Alerts    *controllers.AlertController
	DB        controllers.Pinger
}

type Options struct {
	CORSOrigins []string
	RequestLog  bool
}

// SetupRouter builds the engine. The caller owns serving it.
func SetupRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if opts.RequestLog {
		r.Use(ginlog.SetLogger(
			ginlog.WithUTC(true),
			ginlog.WithSkipPath([]string{"/health"}),
		))
	}
	r.Use(middleware.CORS(opts.CORSOrigins))

	r.GET("/health", controllers.Health(h.DB))

	AuthRoutes(r, h.Auth)
	APIRoutes(r, h)
	AdminRoutes(r, h.Alerts)
	WebSocketRoutes(r, h.Alerts)

	return r
}
