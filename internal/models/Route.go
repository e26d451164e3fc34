package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Route is a directed, mode-tagged catalog edge between two locations.
// A route from A to B says nothing about B to A.
// (origin, destination, mode) is unique.
type Route struct {
	ID              string    `gorm:"primaryKey;type:uuid" json:"id"`
	OriginID        string    `gorm:"type:uuid;not null;uniqueIndex:idx_route_edge;index" json:"origin_id"`
	DestinationID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_route_edge;index" json:"destination_id"`
	TransportMode   string    `gorm:"not null;uniqueIndex:idx_route_edge" json:"transport_mode"`
	DistanceKm      float64   `json:"distance_km"`
	DurationMinutes int       `json:"duration_minutes"`
	BaseCost        float64   `json:"base_cost"`
	FrequencyPerDay int       `json:"frequency_per_day"`
	CreatedAt       time.Time `json:"created_at"`

	Origin      Location `gorm:"foreignKey:OriginID" json:"-"`
	Destination Location `gorm:"foreignKey:DestinationID" json:"-"`
}

func (r *Route) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
