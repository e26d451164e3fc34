package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"apt_planner/internal/models"
	"apt_planner/internal/planner"
)

// CatalogRepository serves locations and routes. It satisfies
// planner.Catalog.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

var _ planner.Catalog = (*CatalogRepository)(nil)

// Locations lists every catalog location ordered by name.
func (r *CatalogRepository) Locations(ctx context.Context) ([]models.Location, error) {
	var locs []models.Location
	if err := r.db.WithContext(ctx).Order("name").Find(&locs).Error; err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locs, nil
}

func (r *CatalogRepository) Location(ctx context.Context, id string) (models.Location, error) {
	var loc models.Location
	// ids are uuids; anything else cannot exist
	if _, err := uuid.Parse(id); err != nil {
		return loc, fmt.Errorf("location %q: %w", id, planner.ErrLocationNotFound)
	}
	err := r.db.WithContext(ctx).First(&loc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return loc, fmt.Errorf("location %q: %w", id, planner.ErrLocationNotFound)
	}
	if err != nil {
		return loc, fmt.Errorf("load location %q: %w", id, err)
	}
	return loc, nil
}

// LocationsByID returns the locations that exist among ids. Unknown ids are
// skipped.
func (r *CatalogRepository) LocationsByID(ctx context.Context, ids []string) ([]models.Location, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}
	var locs []models.Location
	if len(valid) == 0 {
		return locs, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", valid).Order("id").Find(&locs).Error; err != nil {
		return nil, fmt.Errorf("load interchanges: %w", err)
	}
	return locs, nil
}

func (r *CatalogRepository) DirectRoutes(ctx context.Context, originID, destinationID string) ([]models.Route, error) {
	return r.routes(ctx, "origin_id = ? AND destination_id = ?", originID, destinationID)
}

func (r *CatalogRepository) RoutesFrom(ctx context.Context, originID string) ([]models.Route, error) {
	return r.routes(ctx, "origin_id = ?", originID)
}

func (r *CatalogRepository) RoutesTo(ctx context.Context, destinationID string) ([]models.Route, error) {
	return r.routes(ctx, "destination_id = ?", destinationID)
}

func (r *CatalogRepository) routes(ctx context.Context, where string, args ...interface{}) ([]models.Route, error) {
	var routes []models.Route
	if err := r.db.WithContext(ctx).Where(where, args...).Order("id").Find(&routes).Error; err != nil {
		return nil, fmt.Errorf("load routes: %w", err)
	}
	return routes, nil
}

// Counts reports how many locations and routes the catalog holds.
func (r *CatalogRepository) Counts(ctx context.Context) (locations, routes int64, err error) {
	db := r.db.WithContext(ctx)
	if err = db.Model(&models.Location{}).Count(&locations).Error; err != nil {
		return 0, 0, fmt.Errorf("count locations: %w", err)
	}
	if err = db.Model(&models.Route{}).Count(&routes).Error; err != nil {
		return 0, 0, fmt.Errorf("count routes: %w", err)
	}
	return locations, routes, nil
}
