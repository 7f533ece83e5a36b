package booking

import (
	"errors"
	"fmt"

	"medibook/models"
)

// ValidationError blocks progression locally; it never crosses the network
// boundary.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(code, msg string) error {
	return &ValidationError{Code: code, Message: msg}
}

// TransitionError rejects a status transition pre-flight.
type TransitionError struct {
	Code    string
	Message string
	From    models.AppointmentStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s (current status %s)", e.Code, e.Message, e.From)
}

func NewTransitionError(code, msg string, from models.AppointmentStatus) error {
	return &TransitionError{Code: code, Message: msg, From: from}
}

// DuplicateBookingError rejects a submit when a Pending appointment already
// exists for the same patient and clinic.
type DuplicateBookingError struct {
	PatientID string
	ClinicID  string
}

func (e *DuplicateBookingError) Error() string {
	return "duplicateBooking: a pending appointment already exists for this clinic"
}

// Sentinel errors surfaced by Appointment Store clients.
var (
	// ErrVersionConflict means the aggregate changed between reschedule start
	// and commit. Nothing was written.
	ErrVersionConflict = errors.New("appointment was modified concurrently")

	// ErrNotFound means the appointment or session does not exist (or the
	// session expired).
	ErrNotFound = errors.New("not found")
)

const (
	CodeIncompleteDraft   = "incompleteDraft"
	CodeUnknownSlot       = "unknownSlot"
	CodeInvalidTransition = "invalidTransition"
	CodeAlreadyCancelled  = "alreadyCancelled"
)
