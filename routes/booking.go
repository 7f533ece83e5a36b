package routes

import (
	"medibook/handlers"
	"medibook/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, wh *handlers.WizardHandler) {
	booking := r.Group("/api/booking")
	booking.Use(middleware.JWTAuthPatientMiddleware())
	{
		booking.POST("/session", wh.Start)
		booking.GET("/session/:sessionID", wh.Get)
		booking.POST("/session/:sessionID/advance", wh.Advance)
		booking.POST("/session/:sessionID/retreat", wh.Retreat)
		booking.PUT("/session/:sessionID/specialty", wh.SelectSpecialty)
		booking.PUT("/session/:sessionID/doctor", wh.SelectDoctor)
		booking.PUT("/session/:sessionID/date", wh.SelectDate)
		booking.PUT("/session/:sessionID/time", wh.SelectTime)
		booking.PUT("/session/:sessionID/details", wh.SetDetails)
		booking.POST("/session/:sessionID/submit", wh.Submit)
		booking.DELETE("/session/:sessionID", wh.Abandon)
	}
}

// RegisterAppointmentRoutes registers lifecycle and reschedule endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, ah *handlers.AppointmentHandler) {
	api := r.Group("/api/appointments")
	api.Use(middleware.JWTAuthPatientMiddleware())
	{
		api.GET("", ah.List)
		api.GET("/:appointmentID", ah.Get)
		api.POST("/:appointmentID/cancel", ah.Cancel)
		api.POST("/:appointmentID/reschedule", ah.StartReschedule)
	}

	resched := r.Group("/api/reschedule")
	resched.Use(middleware.JWTAuthPatientMiddleware())
	{
		resched.PUT("/:sessionID/date", ah.SelectRescheduleDate)
		resched.PUT("/:sessionID/time", ah.SelectRescheduleTime)
		resched.GET("/:sessionID/preview", ah.PreviewReschedule)
		resched.POST("/:sessionID/commit", ah.CommitReschedule)
		resched.DELETE("/:sessionID", ah.AbandonReschedule)
	}
}
