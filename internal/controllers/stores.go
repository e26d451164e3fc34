package controllers

import (
	"context"
	"time"

	"apt_planner/internal/models"
	"apt_planner/internal/planner"
	"apt_planner/internal/repository"
)

// The narrow views of the repositories each controller needs.

type RoutePlanner interface {
	Plan(ctx context.Context, req planner.Request) (*planner.Result, error)
}

type LocationLister interface {
	Locations(ctx context.Context) ([]models.Location, error)
}

type TripStore interface {
	Create(ctx context.Context, plan *models.TripPlan) error
	Recent(ctx context.Context, userID string, limit int) ([]models.TripPlan, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type AlertStore interface {
	Active(ctx context.Context, now time.Time) ([]models.ServiceAlert, error)
	Create(ctx context.Context, alert *models.ServiceAlert) error
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	ByEmail(ctx context.Context, email string) (models.User, error)
	ByID(ctx context.Context, id string) (models.User, error)
	FirstOrCreate(ctx context.Context, u models.User) (models.User, error)
}

type DashboardSource interface {
	Dashboard(ctx context.Context) (repository.DashboardMetrics, error)
}
