package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"apt_planner/internal/cache"
	"apt_planner/internal/middleware"
	"apt_planner/internal/models"
	"apt_planner/internal/planner"
)

const persistTimeout = 10 * time.Second

// cachedSearch is what a route search stores in the cache. The endpoint
// names ride along so cache hits can still be persisted as trip plans.
type cachedSearch struct {
	Routes          []planner.Itinerary `json:"routes"`
	OriginName      string              `json:"originName"`
	DestinationName string              `json:"destinationName"`
}

type PlannerController struct {
	planner RoutePlanner
	trips   TripStore
	cache   cache.Cache
	ttl     time.Duration

	pending sync.WaitGroup
}

// NewPlannerController builds the route search handler. c may be nil.
func NewPlannerController(p RoutePlanner, trips TripStore, c cache.Cache, ttl time.Duration) *PlannerController {
	return &PlannerController{planner: p, trips: trips, cache: c, ttl: ttl}
}

// CalculateRoutes plans a search and responds with {routes}. The top ranked
// itinerary is saved as a trip plan in the background.
func (pc *PlannerController) CalculateRoutes(c *gin.Context) {
	var req planner.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	if !req.FirstTrip && userID != "" {
		n, err := pc.trips.CountByUser(ctx, userID)
		if err != nil {
			logrus.WithError(err).WithField("user_id", userID).Warn("Could not count trip plans, skipping first trip check")
		} else if n == 0 {
			req.FirstTrip = true
		}
	}

	key := cache.KeyRoutes(strings.TrimSpace(req.OriginID), strings.TrimSpace(req.DestinationID), req.TravelDate, req.Occasion, req.FirstTrip)
	var search cachedSearch
	hit := false
	if pc.cache != nil {
		ok, err := cache.GetJSON(ctx, pc.cache, key, &search)
		if err != nil {
			logrus.WithError(err).Warn("route cache read failed")
		}
		hit = ok
	}
	if hit {
		// itinerary ids are per request
		for i := range search.Routes {
			search.Routes[i].ID = uuid.NewString()
		}
	}

	if !hit {
		result, err := pc.planner.Plan(ctx, req)
		if err != nil {
			switch {
			case errors.Is(err, planner.ErrInvalidEndpoint):
				c.JSON(http.StatusBadRequest, gin.H{"error": planner.ErrInvalidEndpoint.Error()})
			case errors.Is(err, planner.ErrInvalidRequest):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logrus.WithError(err).Error("Route calculation failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate routes"})
			}
			return
		}
		search = cachedSearch{
			Routes:          result.Routes,
			OriginName:      result.Origin.Name,
			DestinationName: result.Destination.Name,
		}
		if pc.cache != nil {
			if err := cache.SetJSON(ctx, pc.cache, key, search, pc.ttl); err != nil {
				logrus.WithError(err).Warn("route cache write failed")
			}
		}
	}

	if len(search.Routes) > 0 {
		pc.persist(req, userID, search)
	}
	c.JSON(http.StatusOK, gin.H{"routes": search.Routes})
}

func (pc *PlannerController) persist(req planner.Request, userID string, search cachedSearch) {
	top := search.Routes[0]
	details, err := json.Marshal(top)
	if err != nil {
		logrus.WithError(err).Error("Failed to encode route details")
		return
	}
	plan := models.TripPlan{
		OriginID:        strings.TrimSpace(req.OriginID),
		DestinationID:   strings.TrimSpace(req.DestinationID),
		OriginName:      search.OriginName,
		DestinationName: search.DestinationName,
		TravelDate:      req.TravelDate,
		TotalCost:       top.TotalCost,
		TotalDuration:   top.TotalDuration,
		RouteDetails:    datatypes.JSON(details),
	}
	if userID != "" {
		plan.UserID = &userID
	}
	if occasion := strings.TrimSpace(req.Occasion); occasion != "" {
		plan.Occasion = &occasion
	}

	pc.pending.Add(1)
	go func() {
		defer pc.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := pc.trips.Create(ctx, &plan); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"origin_id":      plan.OriginID,
				"destination_id": plan.DestinationID,
			}).Error("Failed to save trip plan")
		}
	}()
}

// Wait blocks until background trip plan writes have finished.
func (pc *PlannerController) Wait() {
	pc.pending.Wait()
}
