package handlers

import (
	"errors"
	"net/http"

	"medibook/services/booking"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps booking-core errors onto HTTP responses. Local
// validation and transition failures are client errors; anything else is an
// upstream failure the caller may retry.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *booking.ValidationError
	var transitionErr *booking.TransitionError
	var duplicateErr *booking.DuplicateBookingError

	switch {
	case errors.Is(err, booking.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Code, validationErr.Message)
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusConflict, transitionErr.Code, transitionErr.Message)
	case errors.As(err, &duplicateErr):
		utils.JSONError(c, http.StatusConflict, "duplicateBooking", duplicateErr.Error())
	case errors.Is(err, booking.ErrVersionConflict):
		utils.JSONError(c, http.StatusConflict, "versionConflict",
			"The appointment changed while you were rescheduling. Please start again.")
	default:
		utils.JSONError(c, http.StatusBadGateway, "upstreamFailure",
			"The request could not be completed. Please try again.")
	}
}
