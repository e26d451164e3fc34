package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"apt_planner/internal/models"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// Active returns alerts still valid at now, soonest expiry first.
func (r *AlertRepository) Active(ctx context.Context, now time.Time) ([]models.ServiceAlert, error) {
	alerts := []models.ServiceAlert{}
	err := r.db.WithContext(ctx).Where("valid_to > ?", now).Order("valid_to").Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("list service alerts: %w", err)
	}
	return alerts, nil
}

func (r *AlertRepository) Create(ctx context.Context, alert *models.ServiceAlert) error {
	if err := r.db.WithContext(ctx).Create(alert).Error; err != nil {
		return fmt.Errorf("save service alert: %w", err)
	}
	return nil
}
