package routes

import (
	"medibook/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the slot-grid endpoints. They carry no
// patient data and sit outside authentication.
func RegisterAvailabilityRoutes(r *gin.Engine, ah *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		api.GET("/dates", ah.Dates)
		api.GET("/times", ah.Times)
	}
	r.GET("/health", handlers.Health)
}
