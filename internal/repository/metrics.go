package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// DashboardMetrics summarises stored trip plans for the impact dashboard.
type DashboardMetrics struct {
	TotalTrips          int64           `json:"totalTrips"`
	AvgCost             float64         `json:"avgCost"`
	AvgDuration         float64         `json:"avgDuration"`
	OriginCoverage      int64           `json:"originCoverage"`
	DestinationCoverage int64           `json:"destinationCoverage"`
	EmergencyTrips      int64           `json:"emergencyTrips"`
	LastTripAt          *time.Time      `json:"lastTripAt"`
	OccasionBreakdown   []OccasionCount `json:"occasionBreakdown"`
	TopOrigin           *string         `json:"topOrigin"`
	TopDestination      *string         `json:"topDestination"`
}

type OccasionCount struct {
	Occasion  string `db:"occasion" json:"occasion"`
	TripCount int64  `db:"trip_count" json:"tripCount"`
}

// MetricsRepository runs the dashboard aggregates through sqlx on the same
// connection pool gorm uses.
type MetricsRepository struct {
	db *sqlx.DB
}

// NewMetricsRepository wraps the *sql.DB behind db.
func NewMetricsRepository(db *gorm.DB) (*MetricsRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("metrics repository: %w", err)
	}
	driver := "postgres"
	if db.Dialector.Name() == "sqlite" {
		driver = "sqlite3"
	}
	return &MetricsRepository{db: sqlx.NewDb(sqlDB, driver)}, nil
}

func (r *MetricsRepository) Dashboard(ctx context.Context) (DashboardMetrics, error) {
	var m DashboardMetrics

	var totals struct {
		Count       int64   `db:"total"`
		AvgCost     float64 `db:"avg_cost"`
		AvgDuration float64 `db:"avg_duration"`
		Origins     int64   `db:"origins"`
		Dests       int64   `db:"destinations"`
	}
	err := r.db.GetContext(ctx, &totals, `
		SELECT COUNT(*) AS total,
		       COALESCE(AVG(total_cost), 0) AS avg_cost,
		       COALESCE(AVG(total_duration), 0) AS avg_duration,
		       COUNT(DISTINCT origin_id) AS origins,
		       COUNT(DISTINCT destination_id) AS destinations
		FROM trip_plans`)
	if err != nil {
		return m, fmt.Errorf("dashboard totals: %w", err)
	}
	m.TotalTrips = totals.Count
	m.AvgCost = totals.AvgCost
	m.AvgDuration = totals.AvgDuration
	m.OriginCoverage = totals.Origins
	m.DestinationCoverage = totals.Dests

	err = r.db.GetContext(ctx, &m.EmergencyTrips,
		r.db.Rebind(`SELECT COUNT(*) FROM trip_plans WHERE occasion = ?`), "emergency")
	if err != nil {
		return m, fmt.Errorf("dashboard emergency trips: %w", err)
	}

	var last time.Time
	err = r.db.GetContext(ctx, &last, `SELECT created_at FROM trip_plans ORDER BY created_at DESC LIMIT 1`)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return m, fmt.Errorf("dashboard last trip: %w", err)
	default:
		m.LastTripAt = &last
	}

	m.OccasionBreakdown = []OccasionCount{}
	err = r.db.SelectContext(ctx, &m.OccasionBreakdown, `
		SELECT occasion, COUNT(*) AS trip_count
		FROM trip_plans
		WHERE occasion IS NOT NULL
		GROUP BY occasion
		ORDER BY trip_count DESC, occasion`)
	if err != nil {
		return m, fmt.Errorf("dashboard occasions: %w", err)
	}

	if m.TopOrigin, err = r.top(ctx, "origin_name"); err != nil {
		return m, err
	}
	if m.TopDestination, err = r.top(ctx, "destination_name"); err != nil {
		return m, err
	}
	return m, nil
}

// top returns the most frequent value of column, or nil with no plans.
// column is one of a fixed set of names, never user input.
func (r *MetricsRepository) top(ctx context.Context, column string) (*string, error) {
	var name string
	err := r.db.GetContext(ctx, &name, fmt.Sprintf(`
		SELECT %[1]s FROM trip_plans
		WHERE %[1]s IS NOT NULL AND %[1]s <> ''
		GROUP BY %[1]s
		ORDER BY COUNT(*) DESC, %[1]s
		LIMIT 1`, column))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dashboard top %s: %w", column, err)
	}
	return &name, nil
}
