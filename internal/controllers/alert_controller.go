package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"apt_planner/internal/models"
)

type AlertController struct {
	alerts   AlertStore
	hub      *AlertHub
	upgrader websocket.Upgrader
}

// NewAlertController serves alerts and the live feed. checkOrigin guards the
// websocket upgrade; nil accepts same-origin requests only.
func NewAlertController(alerts AlertStore, hub *AlertHub, checkOrigin func(origin string) bool) *AlertController {
	up := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	if checkOrigin != nil {
		up.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || checkOrigin(origin)
		}
	}
	return &AlertController{alerts: alerts, hub: hub, upgrader: up}
}

// GetAlerts lists alerts that have not yet expired.
func (ac *AlertController) GetAlerts(c *gin.Context) {
	alerts, err := ac.alerts.Active(c.Request.Context(), time.Now().UTC())
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch service alerts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service alerts"})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// CreateAlert stores a new alert and pushes it to live subscribers.
func (ac *AlertController) CreateAlert(c *gin.Context) {
	var alert models.ServiceAlert
	if err := c.ShouldBindJSON(&alert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alert.ID = ""
	if alert.ValidTo.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid_to is required"})
		return
	}
	if !alert.ValidTo.After(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid_to must be in the future"})
		return
	}
	if !alert.ValidFrom.IsZero() && !alert.ValidTo.After(alert.ValidFrom) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid_to must be after valid_from"})
		return
	}

	if err := ac.alerts.Create(c.Request.Context(), &alert); err != nil {
		logrus.WithError(err).Error("Failed to create service alert")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service alert"})
		return
	}
	logrus.WithFields(logrus.Fields{"alert_id": alert.ID, "severity": alert.Severity}).Info("Service alert created")
	ac.hub.Publish(alert)
	c.JSON(http.StatusCreated, alert)
}
