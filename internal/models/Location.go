package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location types accepted by the catalog.
const (
	LocationMegaCity = "mega_city"
	LocationCity     = "city"
	LocationTown     = "town"
	LocationVillage  = "village"
)

// Location is a place in the catalog. Rows are created only while seeding
// and never change afterwards.
type Location struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name         string    `gorm:"uniqueIndex;not null" json:"name"`
	LocationType string    `gorm:"not null" json:"location_type"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// ValidLocationType reports whether t belongs to the closed set of location types.
func ValidLocationType(t string) bool {
	switch t {
	case LocationMegaCity, LocationCity, LocationTown, LocationVillage:
		return true
	}
	return false
}
