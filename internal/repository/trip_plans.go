package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"apt_planner/internal/models"
)

// TripPlanRepository appends and lists trip plans. There is deliberately no
// update or delete.
type TripPlanRepository struct {
	db *gorm.DB
}

func NewTripPlanRepository(db *gorm.DB) *TripPlanRepository {
	return &TripPlanRepository{db: db}
}

func (r *TripPlanRepository) Create(ctx context.Context, plan *models.TripPlan) error {
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return fmt.Errorf("save trip plan: %w", err)
	}
	return nil
}

// Recent returns the newest plans, limited to one user when userID is set.
func (r *TripPlanRepository) Recent(ctx context.Context, userID string, limit int) ([]models.TripPlan, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	plans := []models.TripPlan{}
	if err := q.Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("list trip plans: %w", err)
	}
	return plans, nil
}

func (r *TripPlanRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.TripPlan{}).Where("user_id = ?", userID).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count trip plans: %w", err)
	}
	return n, nil
}
