package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TripPlan is an append-only record of a chosen itinerary plus the search
// that produced it. Plans are never updated or deleted.
type TripPlan struct {
	ID              string         `gorm:"primaryKey;type:uuid" json:"id"`
	UserID          *string        `gorm:"type:uuid;index" json:"user_id,omitempty"`
	OriginID        string         `gorm:"type:uuid;not null" json:"origin_id"`
	DestinationID   string         `gorm:"type:uuid;not null" json:"destination_id"`
	OriginName      string         `json:"origin_name"`
	DestinationName string         `json:"destination_name"`
	TravelDate      string         `gorm:"not null" json:"travel_date"`
	Occasion        *string        `json:"occasion,omitempty"`
	TotalCost       float64        `json:"total_cost"`
	TotalDuration   int            `json:"total_duration"`
	RouteDetails    datatypes.JSON `json:"route_details"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
}

func (p *TripPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
