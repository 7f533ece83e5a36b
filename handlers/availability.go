package handlers

import (
	"net/http"
	"time"

	"medibook/services/booking"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the candidate date window and time grid.
type AvailabilityHandler struct {
	Grid        booking.GridConfig
	HorizonDays int
}

func NewAvailabilityHandler(grid booking.GridConfig, horizonDays int) *AvailabilityHandler {
	return &AvailabilityHandler{Grid: grid, HorizonDays: horizonDays}
}

// Dates returns the weekday-only window starting tomorrow.
func (h *AvailabilityHandler) Dates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dates": booking.DateWindow(time.Now(), h.HorizonDays)})
}

// Times returns the slot grid. Pass ?lunch=false for the grid variant without
// the lunch-hour exclusion.
func (h *AvailabilityHandler) Times(c *gin.Context) {
	grid := h.Grid
	if c.Query("lunch") == "false" {
		grid.LunchHour = nil
	}
	c.JSON(http.StatusOK, gin.H{"times": booking.TimeGrid(grid)})
}

// Health reports the latest health snapshot.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
