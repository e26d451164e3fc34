package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"apt_planner/internal/cache"
	"apt_planner/internal/models"
)

// LocationView is a catalog location with its coordinates as a GeoJSON point.
type LocationView struct {
	models.Location
	Geometry *geojson.Geometry `json:"geometry,omitempty"`
}

type LocationController struct {
	catalog LocationLister
	cache   cache.Cache
	ttl     time.Duration
}

// NewLocationController builds the handler. c may be nil to disable caching.
func NewLocationController(catalog LocationLister, c cache.Cache, ttl time.Duration) *LocationController {
	return &LocationController{catalog: catalog, cache: c, ttl: ttl}
}

// GetLocations returns every catalog location sorted by name.
func (lc *LocationController) GetLocations(c *gin.Context) {
	ctx := c.Request.Context()

	if lc.cache != nil {
		var cached []LocationView
		if ok, err := cache.GetJSON(ctx, lc.cache, cache.KeyLocations, &cached); err != nil {
			logrus.WithError(err).Warn("locations cache read failed")
		} else if ok {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	locations, err := lc.catalog.Locations(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch locations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch locations"})
		return
	}

	views := make([]LocationView, 0, len(locations))
	for _, l := range locations {
		views = append(views, LocationView{Location: l, Geometry: pointGeometry(l)})
	}

	if lc.cache != nil {
		if err := cache.SetJSON(ctx, lc.cache, cache.KeyLocations, views, lc.ttl); err != nil {
			logrus.WithError(err).Warn("locations cache write failed")
		}
	}
	c.JSON(http.StatusOK, views)
}

func pointGeometry(l models.Location) *geojson.Geometry {
	if l.Latitude == nil || l.Longitude == nil {
		return nil
	}
	point := geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{*l.Longitude, *l.Latitude})
	g, err := geojson.Encode(point)
	if err != nil {
		logrus.WithError(err).WithField("location_id", l.ID).Warn("Failed to encode location geometry")
		return nil
	}
	return g
}
