package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/dashboard
func (h *Handlers) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.Services.Stats().Dashboard())
}

// GET /api/drivers/stats
func (h *Handlers) DriverStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Services.Stats().DriverStats())
}

// GET /api/vehicles/stats
func (h *Handlers) FleetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Services.Stats().FleetStats())
}

// GET /api/saved-routes/stats
func (h *Handlers) RouteStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Services.Stats().RouteStats())
}

// GET /api/financials/summary
func (h *Handlers) FinancialSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.Services.Stats().FinancialSummary())
}
