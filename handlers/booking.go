package handlers

import (
	"net/http"

	"medibook/middleware"
	"medibook/models"
	"medibook/services/booking"

	"github.com/gin-gonic/gin"
)

// WizardHandler exposes the multi-step booking flow.
type WizardHandler struct {
	wizard booking.WizardService
}

func NewWizardHandler(wizard booking.WizardService) *WizardHandler {
	return &WizardHandler{wizard: wizard}
}

type startWizardRequest struct {
	ClinicID string `json:"clinicId" binding:"required"`
	// Layout selects the flow variant: "canonical" (default) or "compact".
	Layout string `json:"layout"`
}

// Start creates a new booking session for the authenticated patient.
func (h *WizardHandler) Start(c *gin.Context) {
	var input startWizardRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	layout := models.CanonicalLayout
	if input.Layout == "compact" {
		layout = models.CompactLayout
	}

	state, err := h.wizard.Start(c.Request.Context(), input.ClinicID, middleware.PatientID(c), layout)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

// Get returns the current session state.
func (h *WizardHandler) Get(c *gin.Context) {
	state, err := h.wizard.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Advance validates the current step and moves forward. When the required
// field is missing the session stays on its step; the response carries the
// unchanged state.
func (h *WizardHandler) Advance(c *gin.Context) {
	state, err := h.wizard.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Retreat moves one step back.
func (h *WizardHandler) Retreat(c *gin.Context) {
	state, err := h.wizard.Retreat(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type selectSpecialtyRequest struct {
	Specialty string `json:"specialty" binding:"required"`
}

// SelectSpecialty sets the specialty filter and recomputes the doctor list.
func (h *WizardHandler) SelectSpecialty(c *gin.Context) {
	var input selectSpecialtyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	state, err := h.wizard.SelectSpecialty(c.Request.Context(), c.Param("sessionID"), input.Specialty)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type selectDoctorRequest struct {
	Doctor models.DoctorSummary `json:"doctor" binding:"required"`
}

// SelectDoctor sets the doctor and keeps a snapshot for confirmation.
func (h *WizardHandler) SelectDoctor(c *gin.Context) {
	var input selectDoctorRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	state, err := h.wizard.SelectDoctor(c.Request.Context(), c.Param("sessionID"), input.Doctor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type selectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

func (h *WizardHandler) SelectDate(c *gin.Context) {
	var input selectDateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	state, err := h.wizard.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type selectTimeRequest struct {
	Time string `json:"time" binding:"required"`
}

func (h *WizardHandler) SelectTime(c *gin.Context) {
	var input selectTimeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	state, err := h.wizard.SelectTime(c.Request.Context(), c.Param("sessionID"), input.Time)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type detailsRequest struct {
	Notes         string `json:"notes"`
	PaymentMethod string `json:"paymentMethod"`
}

func (h *WizardHandler) SetDetails(c *gin.Context) {
	var input detailsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	state, err := h.wizard.SetDetails(c.Request.Context(), c.Param("sessionID"), input.Notes, input.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Submit converts the draft into an appointment. On failure the session and
// its draft survive for a manual resubmit.
func (h *WizardHandler) Submit(c *gin.Context) {
	appt, err := h.wizard.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// Abandon discards the session.
func (h *WizardHandler) Abandon(c *gin.Context) {
	if err := h.wizard.Abandon(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
