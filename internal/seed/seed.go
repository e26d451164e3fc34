package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"apt_planner/internal/models"
)

// Run fills an empty catalog with the built-in cities, corridors, alerts and
// sample trip plans. It does nothing when any location already exists.
func Run(ctx context.Context, db *gorm.DB, now time.Time) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Location{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count locations: %w", err)
	}
	if count > 0 {
		logrus.WithField("locations", count).Debug("catalog already seeded")
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids, err := seedLocations(tx)
		if err != nil {
			return err
		}
		if err := seedRoutes(tx, ids); err != nil {
			return err
		}
		if err := seedAlerts(tx, now); err != nil {
			return err
		}
		if err := seedTrips(tx, ids, now); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"locations": len(places),
			"routes":    len(corridors),
			"alerts":    len(notices),
		}).Info("Database seeded with Indian cities and multi-modal corridors")
		return nil
	})
}

func seedLocations(tx *gorm.DB) (map[string]string, error) {
	ids := make(map[string]string, len(places))
	for _, p := range places {
		if !models.ValidLocationType(p.kind) {
			return nil, fmt.Errorf("seed location %s: unknown type %q", p.name, p.kind)
		}
		lat, lng := p.lat, p.lng
		loc := models.Location{Name: p.name, LocationType: p.kind, Latitude: &lat, Longitude: &lng}
		if err := tx.Create(&loc).Error; err != nil {
			return nil, fmt.Errorf("seed location %s: %w", p.name, err)
		}
		ids[p.name] = loc.ID
	}
	return ids, nil
}

func seedRoutes(tx *gorm.DB, ids map[string]string) error {
	routes := make([]models.Route, 0, len(corridors))
	for _, c := range corridors {
		from, okFrom := ids[c.from]
		to, okTo := ids[c.to]
		if !okFrom || !okTo {
			continue
		}
		routes = append(routes, models.Route{
			OriginID:        from,
			DestinationID:   to,
			TransportMode:   c.mode,
			DistanceKm:      c.distKm,
			DurationMinutes: c.minutes,
			BaseCost:        c.cost,
			FrequencyPerDay: c.perDay,
		})
	}
	if err := tx.Create(&routes).Error; err != nil {
		return fmt.Errorf("seed routes: %w", err)
	}
	return nil
}

func seedAlerts(tx *gorm.DB, now time.Time) error {
	for _, n := range notices {
		modes, _ := json.Marshal(n.modes)
		affected, _ := json.Marshal(n.places)
		alert := models.ServiceAlert{
			Title:             n.title,
			Description:       n.description,
			Severity:          n.severity,
			AffectedModes:     datatypes.JSON(modes),
			AffectedLocations: datatypes.JSON(affected),
			ValidFrom:         now.Add(time.Duration(n.startOffset) * time.Hour),
			ValidTo:           now.Add(time.Duration(n.endOffset) * time.Hour),
		}
		if err := tx.Create(&alert).Error; err != nil {
			return fmt.Errorf("seed alert %q: %w", n.title, err)
		}
	}
	return nil
}

func seedTrips(tx *gorm.DB, ids map[string]string, now time.Time) error {
	for i, s := range sampleTrips {
		from, okFrom := ids[s.from]
		to, okTo := ids[s.to]
		if !okFrom || !okTo {
			continue
		}
		details, _ := json.Marshal(map[string]interface{}{"mode": s.mode, "segments": 1})
		occasion := sampleOccasions[i%len(sampleOccasions)]
		plan := models.TripPlan{
			OriginID:        from,
			DestinationID:   to,
			OriginName:      s.from,
			DestinationName: s.to,
			TravelDate:      now.AddDate(0, 0, -(i*4)%30).Format("2006-01-02"),
			Occasion:        &occasion,
			TotalCost:       s.cost,
			TotalDuration:   s.minutes,
			RouteDetails:    datatypes.JSON(details),
			CreatedAt:       now.Add(-time.Duration(len(sampleTrips)-i) * time.Hour),
		}
		if err := tx.Create(&plan).Error; err != nil {
			return fmt.Errorf("seed trip plan: %w", err)
		}
	}
	return nil
}
