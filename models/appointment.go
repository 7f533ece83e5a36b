package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the appointment lifecycle state, stored as an integer
// enum on the wire (0=Pending, 1=Scheduled, 2=Completed, 3=Cancelled).
type AppointmentStatus int

const (
	StatusPending AppointmentStatus = iota
	StatusScheduled
	StatusCompleted
	StatusCancelled
)

func (s AppointmentStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusScheduled:
		return "scheduled"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

func (s AppointmentStatus) Valid() bool {
	return s >= StatusPending && s <= StatusCancelled
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Pending -> Scheduled -> Completed; Pending or Scheduled -> Cancelled.
// A reschedule additionally forces Scheduled back to Pending.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case StatusScheduled:
		return s == StatusPending
	case StatusCompleted:
		return s == StatusScheduled
	case StatusCancelled:
		return s == StatusPending || s == StatusScheduled
	case StatusPending:
		return s == StatusPending || s == StatusScheduled
	default:
		return false
	}
}

// Appointment is the booked aggregate owned by the Appointment Store. This
// service never hard-deletes one; it only moves its status.
type Appointment struct {
	ID              string            `json:"appointment_id"`
	ClinicID        string            `json:"clinic_id"`
	DoctorID        string            `json:"doctor_id"`
	PatientID       string            `json:"patient_id"`
	Schedule        time.Time         `json:"schedule"`
	AppointmentDate string            `json:"appointment_date"` // "2006-01-02"
	Status          AppointmentStatus `json:"status"`
	ConsultationFee string            `json:"consultation_fees"` // decimal string
	Discount        string            `json:"discount"`          // decimal string
	Type            string            `json:"type"`
	PaymentMethod   string            `json:"payment_method"`
	Remarks         string            `json:"remarks"`
	CreatedAt       time.Time         `json:"created_at"`

	CancellationReason string `json:"cancellation_reason,omitempty"`

	// AutoCancelled is set by an external sweep when an appointment's date
	// lapses unconfirmed. This service only reads it.
	AutoCancelled bool `json:"auto_cancelled,omitempty"`

	// Version is the aggregate version used to detect concurrent modification
	// on reschedule commits.
	Version int64 `json:"version"`
}

// TimeKey returns the appointment's 24-hour slot key, e.g. "14:30".
func (a Appointment) TimeKey() string {
	return a.Schedule.Format("15:04")
}

// CreateAppointmentRequest is the wire payload for Appointment Store creation.
type CreateAppointmentRequest struct {
	AppointmentID   string `json:"appointment_id"`
	ClinicID        string `json:"clinic_id"`
	DoctorID        string `json:"doctor_id"`
	PatientID       string `json:"patient_id"`
	ConsultationFee string `json:"consultation_fees"`
	Discount        string `json:"discount"`
	Schedule        string `json:"schedule"`         // ISO datetime
	AppointmentDate string `json:"appointment_date"` // ISO date
	Status          int    `json:"status"`
	Type            string `json:"type"`
	PaymentMethod   string `json:"payment_method"`
	Remarks         string `json:"remarks"`
	CreatedAt       string `json:"created_at"` // ISO datetime
}

// RescheduleRequest moves an appointment to a new date and time as one logical
// operation. Status always lands on Pending, and Version must match the
// aggregate version observed when the reschedule started.
type RescheduleRequest struct {
	AppointmentID string `json:"appointment_id"`
	Date          string `json:"appointment_date"`
	Time          string `json:"time"` // "15:04"
	Status        int    `json:"status"`
	Version       int64  `json:"version"`
}

// AppointmentFilter narrows an Appointment Store listing.
type AppointmentFilter struct {
	PatientID string
	ClinicID  string
}

// NewAppointmentID generates a client-side appointment id token of the form
// APT-<timestamp>-<random>. The Appointment Store treats it as an idempotency
// key, so retried submissions are absorbed.
func NewAppointmentID(now time.Time) string {
	random := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("APT-%d-%s", now.UnixMilli(), random)
}
