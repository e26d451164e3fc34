package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DashboardController struct {
	metrics DashboardSource
}

func NewDashboardController(metrics DashboardSource) *DashboardController {
	return &DashboardController{metrics: metrics}
}

func (dc *DashboardController) GetMetrics(c *gin.Context) {
	m, err := dc.metrics.Dashboard(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to compute dashboard metrics")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch metrics"})
		return
	}
	c.JSON(http.StatusOK, m)
}
