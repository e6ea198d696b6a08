package availability

import (
	"net/http"
	"time"

	"github.com/altorracars/dealership-backend/internal/pkg/apperror"
)

var (
	ErrInvalidHours    = apperror.New(http.StatusBadRequest, "start hour must be before end hour")
	ErrInvalidInterval = apperror.New(http.StatusBadRequest, "slot interval must be 30 or 60 minutes")
	ErrInvalidDate     = apperror.New(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrInvalidTime     = apperror.New(http.StatusBadRequest, "invalid time, expected HH:MM")
)

const (
	// DateLayout is the canonical wire/storage format for calendar dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the canonical wire/storage format for slot times.
	TimeLayout = "15:04"
)

// Config is the recurring weekly schedule: which weekdays accept appointments
// and the bookable window on those days.
type Config struct {
	WeeklyDays          []time.Weekday
	StartHour           int
	EndHour             int
	SlotIntervalMinutes int
	UpdatedAt           time.Time
	UpdatedBy           string
}

// AllowsWeekday reports whether the weekday accepts appointments.
func (c *Config) AllowsWeekday(d time.Weekday) bool {
	for _, wd := range c.WeeklyDays {
		if wd == d {
			return true
		}
	}
	return false
}

// Slots returns the bookable slot times generated from the config window.
func (c *Config) Slots() []string {
	return GenerateSlots(c.StartHour, c.EndHour, c.SlotIntervalMinutes)
}

// DayOverride is the per-date exception layer. A date carries either a
// full-day block or a non-empty set of blocked slot times, never both.
type DayOverride struct {
	Date         string // YYYY-MM-DD
	FullDay      bool
	BlockedTimes []string // HH:MM, empty when FullDay
}

// Snapshot is a point-in-time read of the whole availability state, used for
// pure open/closed decisions without further store round-trips.
type Snapshot struct {
	Config    Config
	Overrides map[string]DayOverride // keyed by date
}

// IsSlotOpen reports whether the (date, time) pair accepts new bookings.
// It fails closed: a weekday outside the weekly schedule, a fully blocked
// date, or a listed partial block all return false.
func (s *Snapshot) IsSlotOpen(date time.Time, timeOfDay string) bool {
	if !s.Config.AllowsWeekday(date.Weekday()) {
		return false
	}

	ov, ok := s.Overrides[FormatDate(date)]
	if !ok {
		return true
	}
	if ov.FullDay {
		return false
	}
	for _, blocked := range ov.BlockedTimes {
		if blocked == timeOfDay {
			return false
		}
	}
	return true
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate renders a calendar date in the canonical YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidTime reports whether s is a valid HH:MM slot time.
func ValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
