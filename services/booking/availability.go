package booking

import (
	"fmt"
	"time"

	"medibook/models"
)

// GridConfig describes the business-hour grid used to generate time slots.
// Two configurations exist in production: with and without the lunch-hour
// exclusion.
type GridConfig struct {
	OpenHour    int
	CloseHour   int
	StepMinutes int
	// LunchHour, when non-nil, excludes every slot whose hour equals it.
	LunchHour *int
}

// DefaultGrid is the standard clinic grid: 09:00 through 17:00 inclusive at a
// 30-minute cadence, with the 12:00 lunch hour excluded.
func DefaultGrid() GridConfig {
	lunch := 12
	return GridConfig{OpenHour: 9, CloseHour: 17, StepMinutes: 30, LunchHour: &lunch}
}

// GridWithoutLunch is the variant grid with no lunch exclusion.
func GridWithoutLunch() GridConfig {
	return GridConfig{OpenHour: 9, CloseHour: 17, StepMinutes: 30}
}

// DateWindow returns the ordered candidate dates starting tomorrow, excluding
// Saturdays and Sundays, across the next horizonDays calendar days. Pure:
// depends only on now.
func DateWindow(now time.Time, horizonDays int) []models.DateOption {
	if horizonDays <= 0 {
		horizonDays = 7
	}
	dates := make([]models.DateOption, 0, horizonDays)
	for i := 1; i <= horizonDays; i++ {
		day := now.AddDate(0, 0, i)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		dates = append(dates, models.DateOption{
			Key:        day.Format("2006-01-02"),
			Weekday:    day.Weekday().String(),
			ShortLabel: day.Format("Mon 2 Jan"),
			LongLabel:  day.Format("Monday, 2 January 2006"),
		})
	}
	return dates
}

// TimeGrid returns the ordered time slots at cfg.StepMinutes cadence from
// OpenHour through CloseHour inclusive. Slots in the configured lunch hour are
// excluded. Keys are 24-hour, labels 12-hour.
func TimeGrid(cfg GridConfig) []models.TimeOption {
	if cfg.StepMinutes <= 0 || cfg.CloseHour < cfg.OpenHour {
		return nil
	}
	var slots []models.TimeOption
	for minutes := cfg.OpenHour * 60; minutes <= cfg.CloseHour*60; minutes += cfg.StepMinutes {
		hour := minutes / 60
		if cfg.LunchHour != nil && hour == *cfg.LunchHour {
			continue
		}
		t := time.Date(0, 1, 1, hour, minutes%60, 0, 0, time.UTC)
		slots = append(slots, models.TimeOption{
			Key:   t.Format("15:04"),
			Label: t.Format("3:04 PM"),
		})
	}
	return slots
}

// InDateWindow reports whether dateKey is one of the candidates for now.
func InDateWindow(now time.Time, horizonDays int, dateKey string) bool {
	for _, d := range DateWindow(now, horizonDays) {
		if d.Key == dateKey {
			return true
		}
	}
	return false
}

// InTimeGrid reports whether timeKey is a member of cfg's grid.
func InTimeGrid(cfg GridConfig, timeKey string) bool {
	for _, s := range TimeGrid(cfg) {
		if s.Key == timeKey {
			return true
		}
	}
	return false
}

// SlotTaken reports whether a candidate (date, time) pair collides with one of
// the given appointments. This is advisory only: the engine guarantees grid
// membership, and nothing in the booking path cross-references live bookings,
// so a false result is not a real-world availability guarantee.
func SlotTaken(dateKey, timeKey string, existing []models.Appointment) bool {
	for _, appt := range existing {
		if appt.Status == models.StatusCancelled {
			continue
		}
		if appt.AppointmentDate == dateKey && appt.TimeKey() == timeKey {
			return true
		}
	}
	return false
}

// CombineSchedule builds the ISO schedule timestamp from a date key and a
// 24-hour time key.
func CombineSchedule(dateKey, timeKey string) (time.Time, error) {
	ts, err := time.ParseInLocation("2006-01-02 15:04", fmt.Sprintf("%s %s", dateKey, timeKey), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule %q %q: %w", dateKey, timeKey, err)
	}
	return ts, nil
}
