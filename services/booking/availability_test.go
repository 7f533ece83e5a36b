package booking

import (
	"testing"
	"time"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateWindowSkipsWeekends(t *testing.T) {
	// Friday. The next 7 calendar days contain one weekend.
	now := time.Date(2024, 6, 7, 10, 0, 0, 0, time.UTC)

	window := DateWindow(now, 7)

	keys := make([]string, 0, len(window))
	for _, d := range window {
		keys = append(keys, d.Key)
		assert.NotEqual(t, "Saturday", d.Weekday)
		assert.NotEqual(t, "Sunday", d.Weekday)
	}
	assert.Equal(t, []string{"2024-06-10", "2024-06-11", "2024-06-12", "2024-06-13", "2024-06-14"}, keys)
}

func TestDateWindowStartsTomorrow(t *testing.T) {
	// Monday: tomorrow is Tuesday, today must not appear.
	now := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

	window := DateWindow(now, 7)

	require.NotEmpty(t, window)
	assert.Equal(t, "2024-06-04", window[0].Key)
	for _, d := range window {
		assert.NotEqual(t, "2024-06-03", d.Key)
	}
}

func TestTimeGridWithLunchExclusion(t *testing.T) {
	grid := TimeGrid(DefaultGrid())

	require.NotEmpty(t, grid)
	assert.Equal(t, "09:00", grid[0].Key)
	assert.Equal(t, "17:00", grid[len(grid)-1].Key)
	// 09:00..17:00 at 30 minutes is 17 slots; the two lunch slots drop out.
	assert.Len(t, grid, 15)
	for _, slot := range grid {
		assert.NotEqual(t, "12:00", slot.Key)
		assert.NotEqual(t, "12:30", slot.Key)
	}
}

func TestTimeGridWithoutLunch(t *testing.T) {
	grid := TimeGrid(GridWithoutLunch())

	assert.Len(t, grid, 17)
	keys := make(map[string]bool, len(grid))
	for _, slot := range grid {
		keys[slot.Key] = true
	}
	assert.True(t, keys["12:00"])
	assert.True(t, keys["12:30"])
}

func TestTimeGridLabels(t *testing.T) {
	grid := TimeGrid(DefaultGrid())

	labels := make(map[string]string, len(grid))
	for _, slot := range grid {
		labels[slot.Key] = slot.Label
	}
	assert.Equal(t, "9:00 AM", labels["09:00"])
	assert.Equal(t, "1:30 PM", labels["13:30"])
	assert.Equal(t, "5:00 PM", labels["17:00"])
}

func TestTimeGridRejectsBadConfig(t *testing.T) {
	assert.Nil(t, TimeGrid(GridConfig{OpenHour: 9, CloseHour: 17, StepMinutes: 0}))
	assert.Nil(t, TimeGrid(GridConfig{OpenHour: 17, CloseHour: 9, StepMinutes: 30}))
}

func TestSlotTakenIsAdvisory(t *testing.T) {
	existing := []models.Appointment{
		{
			AppointmentDate: "2024-06-10",
			Schedule:        time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC),
			Status:          models.StatusPending,
		},
		{
			AppointmentDate: "2024-06-10",
			Schedule:        time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
			Status:          models.StatusCancelled,
		},
	}

	assert.True(t, SlotTaken("2024-06-10", "09:30", existing))
	// Cancelled bookings do not block a slot.
	assert.False(t, SlotTaken("2024-06-10", "10:00", existing))
	assert.False(t, SlotTaken("2024-06-11", "09:30", existing))
}

func TestCombineSchedule(t *testing.T) {
	ts, err := CombineSchedule("2024-06-10", "09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC), ts)

	_, err = CombineSchedule("2024-06-10", "half past nine")
	assert.Error(t, err)
}
