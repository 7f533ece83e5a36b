package booking

import (
	"context"
	"time"

	"medibook/models"
)

// AppointmentStore is the external service owning appointment aggregates.
type AppointmentStore interface {
	Create(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus, reason string) error
	Reschedule(ctx context.Context, req models.RescheduleRequest) error
	List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error)
	Get(ctx context.Context, id string) (*models.Appointment, error)
}

// DoctorDirectory is the external clinic/doctor roster service.
type DoctorDirectory interface {
	ListByClinic(ctx context.Context, clinicID string) ([]models.DoctorSummary, error)
}

// SessionStore persists wizard and reschedule sessions between requests.
type SessionStore interface {
	Put(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string, out any) error
	Delete(ctx context.Context, key string) error
}

// WizardService defines the interface for the multi-step booking flow.
type WizardService interface {
	Start(ctx context.Context, clinicID, patientID string, layout []models.WizardStep) (*models.WizardState, error)
	Get(ctx context.Context, sessionID string) (*models.WizardState, error)
	Advance(ctx context.Context, sessionID string) (*models.WizardState, error)
	Retreat(ctx context.Context, sessionID string) (*models.WizardState, error)
	SelectSpecialty(ctx context.Context, sessionID, token string) (*models.WizardState, error)
	SelectDoctor(ctx context.Context, sessionID string, doctor models.DoctorSummary) (*models.WizardState, error)
	SelectDate(ctx context.Context, sessionID, dateKey string) (*models.WizardState, error)
	SelectTime(ctx context.Context, sessionID, timeKey string) (*models.WizardState, error)
	SetDetails(ctx context.Context, sessionID, notes, paymentMethod string) (*models.WizardState, error)
	Submit(ctx context.Context, sessionID string) (*models.Appointment, error)
	Abandon(ctx context.Context, sessionID string) error
}

// LifecycleService governs one appointment's status transitions.
type LifecycleService interface {
	Get(ctx context.Context, id string) (*models.Appointment, error)
	List(ctx context.Context, patientID string) ([]models.Appointment, error)
	Cancel(ctx context.Context, id, reason string) (*models.Appointment, error)
}

// RescheduleService composes slot selection with the reschedule transition.
type RescheduleService interface {
	Start(ctx context.Context, appointmentID string) (*models.RescheduleSession, []models.DateOption, error)
	SelectDate(ctx context.Context, sessionID, dateKey string) (*models.RescheduleSession, []models.TimeOption, error)
	SelectTime(ctx context.Context, sessionID, timeKey string) (*models.RescheduleSession, error)
	Preview(ctx context.Context, sessionID string) (*models.ReschedulePreview, error)
	Commit(ctx context.Context, sessionID string) (*models.Appointment, error)
	Abandon(ctx context.Context, sessionID string) error
}
