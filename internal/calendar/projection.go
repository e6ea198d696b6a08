package calendar

import (
	"time"

	"github.com/altorracars/dealership-backend/internal/availability"
)

// DayState classifies a calendar cell for rendering.
type DayState string

const (
	// StatePast marks days before today; inert for booking and editing.
	StatePast DayState = "past"
	// StateInert marks weekdays outside the weekly schedule.
	StateInert DayState = "inert"
	// StateBlocked marks fully blocked days; staff-editable.
	StateBlocked DayState = "blocked"
	// StatePartial marks days with partial blocks or existing appointments.
	StatePartial DayState = "partial"
	// StateOpen marks fully available days.
	StateOpen DayState = "open"
)

// DayCell is the render model for one day of the month grid.
type DayCell struct {
	Date             string   `json:"date"`
	Weekday          string   `json:"weekday"`
	IsPast           bool     `json:"is_past"`
	IsAllowedWeekday bool     `json:"is_allowed_weekday"`
	IsFullyBlocked   bool     `json:"is_fully_blocked"`
	HasPartialBlocks bool     `json:"has_partial_blocks"`
	AppointmentCount int      `json:"appointment_count"`
	State            DayState `json:"state"`
	Editable         bool     `json:"editable"`
}

// ProjectMonth merges the recurring schedule, the override layers and the
// per-day appointment counts into the month grid. Classification precedence,
// first match wins: past, disallowed weekday, full block, partial blocks or
// appointments, open. Only non-past allowed weekdays are staff-editable.
func ProjectMonth(year int, month time.Month, today time.Time, snap *availability.Snapshot, counts map[string]int) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	todayKey := availability.FormatDate(today)

	var cells []DayCell
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		key := availability.FormatDate(d)
		ov, hasOverride := snap.Overrides[key]

		cell := DayCell{
			Date:             key,
			Weekday:          d.Weekday().String(),
			IsPast:           key < todayKey,
			IsAllowedWeekday: snap.Config.AllowsWeekday(d.Weekday()),
			IsFullyBlocked:   hasOverride && ov.FullDay,
			HasPartialBlocks: hasOverride && !ov.FullDay && len(ov.BlockedTimes) > 0,
			AppointmentCount: counts[key],
		}

		switch {
		case cell.IsPast:
			cell.State = StatePast
		case !cell.IsAllowedWeekday:
			cell.State = StateInert
		case cell.IsFullyBlocked:
			cell.State = StateBlocked
		case cell.HasPartialBlocks || cell.AppointmentCount > 0:
			cell.State = StatePartial
		default:
			cell.State = StateOpen
		}

		cell.Editable = !cell.IsPast && cell.IsAllowedWeekday

		cells = append(cells, cell)
	}

	return cells
}

// SlotView is the per-slot render model for a single day.
type SlotView struct {
	Time string `json:"time"`
	// Open means the slot accepts bookings per the availability layers.
	Open bool `json:"open"`
	// Taken means the booked-slots index already holds this time. Taken
	// slots render disabled in the day editor rather than blockable.
	Taken bool `json:"taken"`
}

// ProjectDay merges the generated slot list, the availability layers and the
// booked index into the per-slot view for one date.
func ProjectDay(date time.Time, snap *availability.Snapshot, bookedTimes []string) []SlotView {
	booked := make(map[string]bool, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = true
	}

	var views []SlotView
	for _, slot := range snap.Config.Slots() {
		views = append(views, SlotView{
			Time:  slot,
			Open:  snap.IsSlotOpen(date, slot),
			Taken: booked[slot],
		})
	}
	return views
}
