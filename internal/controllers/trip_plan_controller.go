package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"apt_planner/internal/middleware"
	"apt_planner/internal/models"
)

const recentTripPlans = 10

type TripPlanController struct {
	trips TripStore
}

func NewTripPlanController(trips TripStore) *TripPlanController {
	return &TripPlanController{trips: trips}
}

// GetTripPlans lists the newest plans, the caller's own when signed in.
func (tc *TripPlanController) GetTripPlans(c *gin.Context) {
	plans, err := tc.trips.Recent(c.Request.Context(), middleware.UserID(c), recentTripPlans)
	if err != nil {
		logrus.WithError(err).Error("Failed to list trip plans")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trip plans"})
		return
	}
	c.JSON(http.StatusOK, plans)
}

type tripPlanInput struct {
	OriginID        string          `json:"origin_id" binding:"required"`
	DestinationID   string          `json:"destination_id" binding:"required"`
	OriginName      string          `json:"origin_name"`
	DestinationName string          `json:"destination_name"`
	TravelDate      string          `json:"travel_date" binding:"required"`
	Occasion        string          `json:"occasion"`
	TotalCost       float64         `json:"total_cost" binding:"gte=0"`
	TotalDuration   int             `json:"total_duration" binding:"gte=0"`
	RouteDetails    json.RawMessage `json:"route_details"`
}

// CreateTripPlan appends a plan chosen by the client.
func (tc *TripPlanController) CreateTripPlan(c *gin.Context) {
	var input tripPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := uuid.Parse(input.OriginID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid origin or destination"})
		return
	}
	if _, err := uuid.Parse(input.DestinationID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid origin or destination"})
		return
	}

	plan := models.TripPlan{
		OriginID:        input.OriginID,
		DestinationID:   input.DestinationID,
		OriginName:      input.OriginName,
		DestinationName: input.DestinationName,
		TravelDate:      input.TravelDate,
		TotalCost:       input.TotalCost,
		TotalDuration:   input.TotalDuration,
	}
	if len(input.RouteDetails) > 0 {
		plan.RouteDetails = datatypes.JSON(input.RouteDetails)
	}
	if occasion := strings.TrimSpace(input.Occasion); occasion != "" {
		plan.Occasion = &occasion
	}
	if userID := middleware.UserID(c); userID != "" {
		plan.UserID = &userID
	}

	if err := tc.trips.Create(c.Request.Context(), &plan); err != nil {
		logrus.WithError(err).Error("Failed to save trip plan")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save trip plan"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": plan.ID, "message": "Trip plan saved"})
}
