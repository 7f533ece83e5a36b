package booking

import (
	"context"
	"fmt"
	"time"

	"medibook/models"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PendingConfirmationLabel is shown on the reschedule confirmation view: the
// resulting status is always Pending regardless of the prior status.
const PendingConfirmationLabel = "Pending - awaiting confirmation"

// DefaultRescheduleService implements RescheduleService. The commit is one
// logical operation against the Appointment Store carrying date, time and
// status together, guarded by the aggregate version observed at session start.
type DefaultRescheduleService struct {
	Store    AppointmentStore
	Sessions SessionStore

	Grid        GridConfig
	HorizonDays int
	SessionTTL  time.Duration

	Now func() time.Time
}

func (s *DefaultRescheduleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultRescheduleService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return 30 * time.Minute
}

// Start snapshots the appointment, checks it is reschedulable, and returns
// the candidate dates.
func (s *DefaultRescheduleService) Start(ctx context.Context, appointmentID string) (*models.RescheduleSession, []models.DateOption, error) {
	appt, err := s.Store.Get(ctx, appointmentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if err := CheckReschedulable(appt); err != nil {
		return nil, nil, err
	}

	session := &models.RescheduleSession{
		SessionID: uuid.New().String(),
		Original:  *appt,
		Version:   appt.Version,
	}
	if err := s.save(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, DateWindow(s.now(), s.HorizonDays), nil
}

// SelectDate records the proposed date and clears any previously chosen time,
// then returns the time grid for the new date.
func (s *DefaultRescheduleService) SelectDate(ctx context.Context, sessionID, dateKey string) (*models.RescheduleSession, []models.TimeOption, error) {
	if !InDateWindow(s.now(), s.HorizonDays, dateKey) {
		return nil, nil, NewValidationError(CodeUnknownSlot, "date is not in the booking window")
	}

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	session.NewDate = dateKey
	session.NewTime = ""
	if err := s.save(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, TimeGrid(s.Grid), nil
}

// SelectTime records the proposed time. A date must already be chosen.
func (s *DefaultRescheduleService) SelectTime(ctx context.Context, sessionID, timeKey string) (*models.RescheduleSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.NewDate == "" {
		return nil, NewValidationError(CodeUnknownSlot, "select a date before a time")
	}
	if !InTimeGrid(s.Grid, timeKey) {
		return nil, NewValidationError(CodeUnknownSlot, "time is not on the slot grid")
	}
	session.NewTime = timeKey
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Preview composes the confirmation view: original snapshot, proposal, and
// the resulting status.
func (s *DefaultRescheduleService) Preview(ctx context.Context, sessionID string) (*models.ReschedulePreview, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.NewDate == "" || session.NewTime == "" {
		return nil, NewValidationError(CodeUnknownSlot, "both a new date and time are required")
	}
	return &models.ReschedulePreview{
		Original:        session.Original,
		NewDate:         session.NewDate,
		NewTime:         session.NewTime,
		ResultingStatus: models.StatusPending,
		StatusLabel:     PendingConfirmationLabel,
	}, nil
}

// Commit issues the single reschedule call. On a version conflict nothing was
// written upstream and the session survives so the patient can restart from
// fresh data.
func (s *DefaultRescheduleService) Commit(ctx context.Context, sessionID string) (*models.Appointment, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.NewDate == "" || session.NewTime == "" {
		return nil, NewValidationError(CodeUnknownSlot, "both a new date and time are required")
	}

	req := models.RescheduleRequest{
		AppointmentID: session.Original.ID,
		Date:          session.NewDate,
		Time:          session.NewTime,
		Status:        int(models.StatusPending),
		Version:       session.Version,
	}
	if err := s.Store.Reschedule(ctx, req); err != nil {
		utils.GetLogger().Error("reschedule commit failed",
			zap.String("appointmentID", session.Original.ID), zap.Error(err))
		return nil, err
	}

	if err := s.Sessions.Delete(ctx, rescheduleKey(sessionID)); err != nil {
		utils.GetLogger().Warn("failed to clear reschedule session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	updated := session.Original
	updated.AppointmentDate = session.NewDate
	if schedule, err := CombineSchedule(session.NewDate, session.NewTime); err == nil {
		updated.Schedule = schedule
	}
	updated.Status = models.StatusPending
	updated.Version = session.Version + 1
	return &updated, nil
}

// Abandon discards the reschedule session.
func (s *DefaultRescheduleService) Abandon(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, rescheduleKey(sessionID))
}

func (s *DefaultRescheduleService) load(ctx context.Context, sessionID string) (*models.RescheduleSession, error) {
	var session models.RescheduleSession
	if err := s.Sessions.Get(ctx, rescheduleKey(sessionID), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *DefaultRescheduleService) save(ctx context.Context, session *models.RescheduleSession) error {
	return s.Sessions.Put(ctx, rescheduleKey(session.SessionID), session, s.ttl())
}

func rescheduleKey(sessionID string) string {
	return utils.RescheduleKeyPrefix + sessionID
}
