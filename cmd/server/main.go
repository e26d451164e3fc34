package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"apt_planner/internal/cache"
	"apt_planner/internal/config"
	"apt_planner/internal/controllers"
	"apt_planner/internal/logger"
	"apt_planner/internal/middleware"
	"apt_planner/internal/planner"
	"apt_planner/internal/repository"
	"apt_planner/internal/routes"
	"apt_planner/internal/seed"
)

func main() {
	settings := config.Load()

	// Initialize structured logging to file
	logger.Setup(settings.LogFile, settings.LogLevel)
	if settings.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.Configure(settings.JWTSecret, settings.JWTTTL)
	if settings.AuthDevBypass {
		logrus.Warn("AUTH_DEV_BYPASS is enabled, /auth/dev signs anyone in")
	}

	// Connect to the database
	db, err := config.InitDB(settings)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialise database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to access database pool")
	}
	defer sqlDB.Close()

	if settings.SeedOnBoot {
		if err := seed.Run(context.Background(), db, time.Now().UTC()); err != nil {
			logrus.WithError(err).Fatal("Failed to seed catalog")
		}
	}

	tables, err := planner.LoadTables(settings.TablesFile)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load planner tables")
	}

	catalog := repository.NewCatalogRepository(db)
	if nLocs, nRoutes, err := catalog.Counts(context.Background()); err != nil {
		logrus.WithError(err).Fatal("Failed to read catalog")
	} else {
		logrus.WithFields(logrus.Fields{"locations": nLocs, "routes": nRoutes}).Info("Catalog loaded")
		if nLocs == 0 {
			logrus.Warn("Catalog is empty, every search will return no routes")
		}
	}
	trips := repository.NewTripPlanRepository(db)
	alerts := repository.NewAlertRepository(db)
	users := repository.NewUserRepository(db)
	metrics, err := repository.NewMetricsRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to build metrics repository")
	}

	if err := controllers.EnsureAdmin(context.Background(), users, settings.AdminEmail, settings.AdminPassword); err != nil {
		logrus.WithError(err).Fatal("Failed to create admin account")
	}

	routeCache := newCache(settings)
	defer routeCache.Close()

	engine := planner.New(catalog, planner.Options{
		ConnectionCap:  settings.ConnectionCap,
		SampleFallback: settings.SampleFallback,
		Tables:         tables,
		Logger:         logrus.WithField("component", "planner"),
	})

	hub := controllers.NewAlertHub()
	defer hub.Close()

	plannerController := controllers.NewPlannerController(engine, trips, routeCache, settings.CacheTTL)
	r := routes.SetupRouter(routes.Handlers{
		Auth:      controllers.NewAuthController(users, settings.AuthDevBypass),
		Locations: controllers.NewLocationController(catalog, routeCache, settings.CacheTTL),
		Planner:   plannerController,
		TripPlans: controllers.NewTripPlanController(trips),
		Dashboard: controllers.NewDashboardController(metrics),
		Alerts:    controllers.NewAlertController(alerts, hub, middleware.OriginChecker(settings.CORSOrigins)),
		DB:        sqlDB,
	}, routes.Options{
		CORSOrigins: settings.CORSOrigins,
		RequestLog:  settings.RequestLog,
	})

	srv := &http.Server{
		Addr:              "0.0.0.0:" + settings.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithField("addr", srv.Addr).Info("🚀 Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	hub.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}
	plannerController.Wait()
	logrus.Info("Server stopped")
}

// newCache prefers Redis and falls back to the in-process LRU when Redis is
// not configured or unreachable.
func newCache(s config.Settings) cache.Cache {
	if s.RedisAddr != "" {
		rc, err := cache.NewRedisCache(s.RedisAddr, s.RedisPassword, s.RedisDB)
		if err == nil {
			logrus.WithField("addr", s.RedisAddr).Info("Using Redis route cache")
			return rc
		}
		logrus.WithError(err).Warn("Redis unavailable, using in-memory route cache")
	}
	return cache.NewMemoryCache(s.CacheSize, s.CacheTTL)
}
