package booking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"medibook/models"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultWizardService implements WizardService. Session state lives in the
// session store; every operation loads the state, applies one change, and
// writes it back, so there is no shared mutable draft.
type DefaultWizardService struct {
	Directory DoctorDirectory
	Store     AppointmentStore
	Guard     *DuplicateBookingGuard
	Sessions  SessionStore

	Grid        GridConfig
	HorizonDays int
	SessionTTL  time.Duration

	// FallbackFee is charged when the selected doctor carries no fee.
	FallbackFee float64

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultWizardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultWizardService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return 30 * time.Minute
}

// Start creates a new wizard session for the clinic and fetches its doctor
// roster. A directory failure degrades the session rather than failing it:
// steps that need no roster data stay navigable.
func (s *DefaultWizardService) Start(ctx context.Context, clinicID, patientID string, layout []models.WizardStep) (*models.WizardState, error) {
	if len(layout) == 0 {
		layout = models.CanonicalLayout
	}

	state := &models.WizardState{
		SessionID: uuid.New().String(),
		ClinicID:  clinicID,
		PatientID: patientID,
		Layout:    layout,
	}

	doctors, err := s.Directory.ListByClinic(ctx, clinicID)
	if err != nil {
		utils.GetLogger().Warn("doctor roster fetch failed, continuing degraded",
			zap.String("clinicID", clinicID), zap.Error(err))
		state.DirectoryDegraded = true
	} else {
		state.Doctors = doctors
		state.FilteredDoctors = doctors
	}

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *DefaultWizardService) Get(ctx context.Context, sessionID string) (*models.WizardState, error) {
	return s.load(ctx, sessionID)
}

// Advance validates the current step and moves forward. A missing required
// field keeps the session on its step without error; the caller sees the
// unchanged step index.
func (s *DefaultWizardService) Advance(ctx context.Context, sessionID string) (*models.WizardState, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !state.StepComplete(state.CurrentStep()) {
		return state, nil
	}

	if state.StepIndex < len(state.Layout)-1 {
		state.StepIndex++
		if err := s.save(ctx, state); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// Retreat moves one step back, clamped to the first step. It never
// re-validates.
func (s *DefaultWizardService) Retreat(ctx context.Context, sessionID string) (*models.WizardState, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.StepIndex > 0 {
		state.StepIndex--
		if err := s.save(ctx, state); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// SelectSpecialty sets the specialty filter and the derived appointment type,
// then recomputes the filtered roster by case-insensitive substring match.
func (s *DefaultWizardService) SelectSpecialty(ctx context.Context, sessionID, token string) (*models.WizardState, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Draft.SpecialtyFilter = token
	state.Draft.AppointmentType = token

	filtered := make([]models.DoctorSummary, 0, len(state.Doctors))
	for _, doctor := range state.Doctors {
		if doctor.Specialties.MatchesFilter(token) {
			filtered = append(filtered, doctor)
		}
	}
	state.FilteredDoctors = filtered

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SelectDoctor sets the doctor and retains a snapshot for the confirmation
// view. Selection is independent of the specialty filter; a patient may pick a
// doctor outside the current filter.
func (s *DefaultWizardService) SelectDoctor(ctx context.Context, sessionID string, doctor models.DoctorSummary) (*models.WizardState, error) {
	if doctor.ID == "" {
		return nil, NewValidationError("missingDoctor", "doctor id is required")
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	snapshot := doctor
	state.Draft.DoctorID = doctor.ID
	state.DoctorSnapshot = &snapshot

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SelectDate sets the draft date. The date must come from the current window.
func (s *DefaultWizardService) SelectDate(ctx context.Context, sessionID, dateKey string) (*models.WizardState, error) {
	if !InDateWindow(s.now(), s.HorizonDays, dateKey) {
		return nil, NewValidationError(CodeUnknownSlot, "date is not in the booking window")
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Draft.Date = dateKey
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SelectTime sets the draft time. The slot must belong to the configured grid.
func (s *DefaultWizardService) SelectTime(ctx context.Context, sessionID, timeKey string) (*models.WizardState, error) {
	if !InTimeGrid(s.Grid, timeKey) {
		return nil, NewValidationError(CodeUnknownSlot, "time is not on the slot grid")
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Draft.Time = timeKey
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SetDetails records the optional notes and payment method.
func (s *DefaultWizardService) SetDetails(ctx context.Context, sessionID, notes, paymentMethod string) (*models.WizardState, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Draft.Notes = notes
	state.Draft.PaymentMethod = paymentMethod
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Submit converts the draft into an appointment. Incomplete drafts are
// rejected locally with no network call. On success the session is cleared;
// on store failure the draft is retained so the patient can resubmit.
func (s *DefaultWizardService) Submit(ctx context.Context, sessionID string) (*models.Appointment, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !state.Draft.Submittable() {
		return nil, NewValidationError(CodeIncompleteDraft,
			"doctor, date, time and appointment type are required before submitting")
	}

	if s.Guard != nil && s.Guard.CheckExisting(ctx, state.PatientID, state.ClinicID) {
		return nil, &DuplicateBookingError{PatientID: state.PatientID, ClinicID: state.ClinicID}
	}

	req, err := s.buildCreateRequest(state)
	if err != nil {
		return nil, err
	}

	appt, err := s.Store.Create(ctx, req)
	if err != nil {
		// Draft stays in the session; the failure is recoverable by resubmit.
		utils.GetLogger().Error("appointment create failed",
			zap.String("sessionID", sessionID),
			zap.String("appointmentID", req.AppointmentID), zap.Error(err))
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if err := s.Sessions.Delete(ctx, sessionKey(sessionID)); err != nil {
		utils.GetLogger().Warn("failed to clear booking session after submit",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	return appt, nil
}

// Abandon discards the session and its draft.
func (s *DefaultWizardService) Abandon(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionKey(sessionID))
}

func (s *DefaultWizardService) buildCreateRequest(state *models.WizardState) (models.CreateAppointmentRequest, error) {
	schedule, err := CombineSchedule(state.Draft.Date, state.Draft.Time)
	if err != nil {
		return models.CreateAppointmentRequest{}, NewValidationError(CodeUnknownSlot, err.Error())
	}

	fee := s.FallbackFee
	if state.DoctorSnapshot != nil && state.DoctorSnapshot.ConsultationFee > 0 {
		fee = state.DoctorSnapshot.ConsultationFee
	}

	now := s.now()
	return models.CreateAppointmentRequest{
		AppointmentID:   models.NewAppointmentID(now),
		ClinicID:        state.ClinicID,
		DoctorID:        state.Draft.DoctorID,
		PatientID:       state.PatientID,
		ConsultationFee: formatFee(fee),
		Discount:        "0.00",
		Schedule:        schedule.Format(time.RFC3339),
		AppointmentDate: state.Draft.Date,
		Status:          int(models.StatusPending),
		Type:            state.Draft.AppointmentType,
		PaymentMethod:   state.Draft.PaymentMethod,
		Remarks:         state.Draft.Notes,
		CreatedAt:       now.UTC().Format(time.RFC3339),
	}, nil
}

func (s *DefaultWizardService) load(ctx context.Context, sessionID string) (*models.WizardState, error) {
	var state models.WizardState
	if err := s.Sessions.Get(ctx, sessionKey(sessionID), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *DefaultWizardService) save(ctx context.Context, state *models.WizardState) error {
	return s.Sessions.Put(ctx, sessionKey(state.SessionID), state, s.ttl())
}

func sessionKey(sessionID string) string {
	return utils.SessionKeyPrefix + sessionID
}

func formatFee(fee float64) string {
	return strconv.FormatFloat(fee, 'f', 2, 64)
}
