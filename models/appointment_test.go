package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to AppointmentStatus
		allowed  bool
	}{
		{StatusPending, StatusScheduled, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPending, true},
		{StatusPending, StatusCompleted, false},
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusPending, true}, // reschedule drops confirmation
		{StatusScheduled, StatusScheduled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusCancelled, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestStatusTerminality(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusScheduled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, AppointmentStatus(-1).Valid())
	assert.False(t, AppointmentStatus(4).Valid())
}

func TestNewAppointmentID(t *testing.T) {
	now := time.Date(2024, 6, 7, 10, 0, 0, 0, time.UTC)

	id := NewAppointmentID(now)
	assert.Regexp(t, `^APT-1717754400000-[0-9a-f]{8}$`, id)

	// Two ids from the same instant still differ.
	assert.NotEqual(t, id, NewAppointmentID(now))
}

func TestTimeKey(t *testing.T) {
	appt := Appointment{Schedule: time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)}
	assert.Equal(t, "14:30", appt.TimeKey())
}
