package handlers

import (
	"net/http"

	"medibook/middleware"
	"medibook/services/booking"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the appointment lifecycle: listing, cancel, and
// the reschedule flow.
type AppointmentHandler struct {
	lifecycle  booking.LifecycleService
	reschedule booking.RescheduleService
}

func NewAppointmentHandler(lifecycle booking.LifecycleService, reschedule booking.RescheduleService) *AppointmentHandler {
	return &AppointmentHandler{lifecycle: lifecycle, reschedule: reschedule}
}

// List returns the authenticated patient's appointments.
func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.lifecycle.List(c.Request.Context(), middleware.PatientID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	appt, err := h.lifecycle.Get(c.Request.Context(), c.Param("appointmentID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

// Cancel moves an appointment to Cancelled. Terminal appointments are
// rejected before any upstream call.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	// The reason is optional, so an empty body is fine.
	var input cancelRequest
	_ = c.ShouldBindJSON(&input)
	appt, err := h.lifecycle.Cancel(c.Request.Context(), c.Param("appointmentID"), input.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// StartReschedule opens a reschedule session and returns the candidate dates.
func (h *AppointmentHandler) StartReschedule(c *gin.Context) {
	session, dates, err := h.reschedule.Start(c.Request.Context(), c.Param("appointmentID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session, "dates": dates})
}

type rescheduleDateRequest struct {
	Date string `json:"date" binding:"required"`
}

// SelectRescheduleDate records the proposed date, clears any prior time, and
// returns the time grid.
func (h *AppointmentHandler) SelectRescheduleDate(c *gin.Context) {
	var input rescheduleDateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, times, err := h.reschedule.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "times": times})
}

type rescheduleTimeRequest struct {
	Time string `json:"time" binding:"required"`
}

func (h *AppointmentHandler) SelectRescheduleTime(c *gin.Context) {
	var input rescheduleTimeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.reschedule.SelectTime(c.Request.Context(), c.Param("sessionID"), input.Time)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// PreviewReschedule composes the confirmation view before commit.
func (h *AppointmentHandler) PreviewReschedule(c *gin.Context) {
	preview, err := h.reschedule.Preview(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// CommitReschedule applies the reschedule as one operation.
func (h *AppointmentHandler) CommitReschedule(c *gin.Context) {
	appt, err := h.reschedule.Commit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// AbandonReschedule discards the reschedule session.
func (h *AppointmentHandler) AbandonReschedule(c *gin.Context) {
	if err := h.reschedule.Abandon(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
