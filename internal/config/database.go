package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"apt_planner/internal/logger"
	"apt_planner/internal/models"
)

// InitDB opens the configured database and applies migrations.
func InitDB(s Settings) (*gorm.DB, error) {
	dialector, err := dialectorFor(s)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Gorm()})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", s.DBDriver, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logrus.WithField("driver", s.DBDriver).Info("database ready")
	return db, nil
}

func dialectorFor(s Settings) (gorm.Dialector, error) {
	switch s.DBDriver {
	case DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			s.DBHost, s.DBUser, s.DBPassword, s.DBName, s.DBPort, s.DBSSLMode, s.DBTimezone,
		)
		// lib/pq so that unique violations surface as *pq.Error
		return postgres.New(postgres.Config{DriverName: "postgres", DSN: dsn}), nil
	case DriverSQLite:
		if dir := filepath.Dir(s.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		return sqlite.Open(s.SQLitePath), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", s.DBDriver)
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.Route{},
		&models.TripPlan{},
		&models.ServiceAlert{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
