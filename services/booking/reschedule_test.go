package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReschedule(store *fakeStore) *DefaultRescheduleService {
	return &DefaultRescheduleService{
		Store:       store,
		Sessions:    NewMemorySessionStore(),
		Grid:        DefaultGrid(),
		HorizonDays: 7,
		SessionTTL:  time.Minute,
		Now:         func() time.Time { return testNow },
	}
}

func TestStartRescheduleSnapshotsVersion(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, "APT-1", models.StatusScheduled)

	session, dates, err := newTestReschedule(store).Start(context.Background(), "APT-1")

	require.NoError(t, err)
	assert.Equal(t, int64(3), session.Version)
	assert.Equal(t, "APT-1", session.Original.ID)
	require.NotEmpty(t, dates)
	assert.Equal(t, "2024-06-10", dates[0].Key)
}

func TestStartRescheduleRejectsTerminalStates(t *testing.T) {
	for _, status := range []models.AppointmentStatus{models.StatusCompleted, models.StatusCancelled} {
		store := newFakeStore()
		seedAppointment(store, "APT-1", status)

		_, _, err := newTestReschedule(store).Start(context.Background(), "APT-1")

		var transitionErr *TransitionError
		require.ErrorAs(t, err, &transitionErr, "status %s", status)
	}
}

func TestSelectRescheduleDateClearsTime(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, "APT-1", models.StatusPending)
	svc := newTestReschedule(store)
	ctx := context.Background()

	session, _, err := svc.Start(ctx, "APT-1")
	require.NoError(t, err)
	_, _, err = svc.SelectDate(ctx, session.SessionID, "2024-06-10")
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, session.SessionID, "10:00")
	require.NoError(t, err)

	// A fresh date wipes the earlier time choice.
	updated, times, err := svc.SelectDate(ctx, session.SessionID, "2024-06-11")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-11", updated.NewDate)
	assert.Empty(t, updated.NewTime)
	assert.NotEmpty(t, times)
}

func TestSelectRescheduleTimeRequiresDateFirst(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, "APT-1", models.StatusPending)
	svc := newTestReschedule(store)
	ctx := context.Background()

	session, _, err := svc.Start(ctx, "APT-1")
	require.NoError(t, err)

	_, err = svc.SelectTime(ctx, session.SessionID, "10:00")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestReschedulePreviewShowsPendingResult(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, "APT-1", models.StatusScheduled)
	svc := newTestReschedule(store)
	ctx := context.Background()

	session, _, err := svc.Start(ctx, "APT-1")
	require.NoError(t, err)
	_, _, err = svc.SelectDate(ctx, session.SessionID, "2024-06-11")
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, session.SessionID, "14:30")
	require.NoError(t, err)

	preview, err := svc.Preview(ctx, session.SessionID)

	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, preview.Original.Status)
	assert.Equal(t, "2024-06-11", preview.NewDate)
	assert.Equal(t, "14:30", preview.NewTime)
	assert.Equal(t, models.StatusPending, preview.ResultingStatus)
	assert.Equal(t, PendingConfirmationLabel, preview.StatusLabel)
}

func TestCommitRescheduleSendsOneVersionedRequest(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, "APT-1", models.StatusScheduled)
	svc := newTestReschedule(store)
	ctx := context.Background()

	session, _, err := svc.Start(ctx, "APT-1")
	require.NoError(t, err)
	_, _, err = svc.SelectDate(ctx, session.SessionID, "2024-06-11")
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, session.SessionID, "14:30")
	require.NoError(t, err)

	appt, err := svc.Commit(ctx, session.SessionID)

	require.NoError(t, err)
	req := store.lastReschedule
	assert.Equal(t, "APT-1", req.AppointmentID)
	assert.Equal(t, "2024-06-11", req.Date)
	assert.Equal(t, "14:30", req.Time)
	assert.Equal(t, int(models.StatusPending), req.Status)
	assert.Equal(t, int64(3), req.Version)

	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Equal(t, "2024-06-11", appt.AppointmentDate)
	assert.Equal(t, int64(4), appt.Version)

	// Session is gone after commit.
	_, err = svc.Preview(ctx, session.SessionID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCommitRescheduleVersionConflictKeepsSession(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, "APT-1", models.StatusPending)
	store.rescheduleErr = ErrVersionConflict
	svc := newTestReschedule(store)
	ctx := context.Background()

	session, _, err := svc.Start(ctx, "APT-1")
	require.NoError(t, err)
	_, _, err = svc.SelectDate(ctx, session.SessionID, "2024-06-11")
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, session.SessionID, "14:30")
	require.NoError(t, err)

	_, err = svc.Commit(ctx, session.SessionID)
	assert.True(t, errors.Is(err, ErrVersionConflict))

	// The session survives the conflict so the flow can restart cleanly.
	preview, err := svc.Preview(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-11", preview.NewDate)
}

func TestCommitRescheduleRequiresBothFields(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, "APT-1", models.StatusPending)
	svc := newTestReschedule(store)
	ctx := context.Background()

	session, _, err := svc.Start(ctx, "APT-1")
	require.NoError(t, err)
	_, _, err = svc.SelectDate(ctx, session.SessionID, "2024-06-11")
	require.NoError(t, err)

	_, err = svc.Commit(ctx, session.SessionID)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestAbandonRescheduleDiscardsSession(t *testing.T) {
	store := newFakeStore()
	seedAppointment(store, "APT-1", models.StatusPending)
	svc := newTestReschedule(store)
	ctx := context.Background()

	session, _, err := svc.Start(ctx, "APT-1")
	require.NoError(t, err)

	require.NoError(t, svc.Abandon(ctx, session.SessionID))
	_, err = svc.Preview(ctx, session.SessionID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
