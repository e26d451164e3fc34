package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ServiceAlert is a disruption notice shown next to search results.
// AffectedModes and AffectedLocations hold JSON string arrays.
type ServiceAlert struct {
	ID                string         `gorm:"primaryKey;type:uuid" json:"id"`
	Title             string         `gorm:"not null" json:"title" binding:"required"`
	Description       string         `gorm:"not null" json:"description" binding:"required"`
	Severity          string         `gorm:"not null" json:"severity" binding:"required,oneof=low medium high"`
	AffectedModes     datatypes.JSON `json:"affected_modes"`
	AffectedLocations datatypes.JSON `json:"affected_locations"`
	ValidFrom         time.Time      `json:"valid_from"`
	ValidTo           time.Time      `gorm:"index" json:"valid_to"`
	CreatedAt         time.Time      `json:"created_at"`
}

func (a *ServiceAlert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.ValidFrom.IsZero() {
		a.ValidFrom = time.Now().UTC()
	}
	return nil
}
