package booking

import (
	"context"
	"fmt"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// DefaultLifecycleService implements LifecycleService against the external
// Appointment Store. Invalid transitions are rejected pre-flight, before any
// network call.
type DefaultLifecycleService struct {
	Store AppointmentStore
}

func (s *DefaultLifecycleService) Get(ctx context.Context, id string) (*models.Appointment, error) {
	return s.Store.Get(ctx, id)
}

func (s *DefaultLifecycleService) List(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.Store.List(ctx, models.AppointmentFilter{PatientID: patientID})
}

// Cancel moves an appointment to Cancelled, recording an optional reason.
// Allowed only from Pending or Scheduled.
func (s *DefaultLifecycleService) Cancel(ctx context.Context, id, reason string) (*models.Appointment, error) {
	appt, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}

	if err := CheckCancellable(appt); err != nil {
		return nil, err
	}

	if err := s.Store.UpdateStatus(ctx, id, models.StatusCancelled, reason); err != nil {
		utils.GetLogger().Error("cancel failed upstream",
			zap.String("appointmentID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	appt.Status = models.StatusCancelled
	appt.CancellationReason = reason
	return appt, nil
}

// CheckCancellable rejects a cancel attempt from a terminal state.
func CheckCancellable(appt *models.Appointment) error {
	switch appt.Status {
	case models.StatusCancelled:
		return NewTransitionError(CodeAlreadyCancelled,
			"appointment is already cancelled", appt.Status)
	case models.StatusCompleted:
		return NewTransitionError(CodeInvalidTransition,
			"a completed appointment cannot be cancelled", appt.Status)
	}
	if !appt.Status.CanTransitionTo(models.StatusCancelled) {
		return NewTransitionError(CodeInvalidTransition,
			"appointment cannot be cancelled", appt.Status)
	}
	return nil
}

// CheckReschedulable rejects a reschedule attempt unless the appointment is
// Pending or Scheduled. A successful reschedule always lands on Pending.
func CheckReschedulable(appt *models.Appointment) error {
	if appt.Status != models.StatusPending && appt.Status != models.StatusScheduled {
		return NewTransitionError(CodeInvalidTransition,
			"appointment cannot be rescheduled", appt.Status)
	}
	return nil
}
