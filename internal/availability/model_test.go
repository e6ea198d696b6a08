package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdaySnapshot(overrides ...DayOverride) *Snapshot {
	snap := &Snapshot{
		Config: Config{
			WeeklyDays: []time.Weekday{
				time.Monday, time.Tuesday, time.Wednesday,
				time.Thursday, time.Friday,
			},
			StartHour:           8,
			EndHour:             18,
			SlotIntervalMinutes: 60,
		},
		Overrides: make(map[string]DayOverride),
	}
	for _, ov := range overrides {
		snap.Overrides[ov.Date] = ov
	}
	return snap
}

func TestIsSlotOpen(t *testing.T) {
	// 2025-03-10 is a Monday, 2025-03-15 is a Saturday.
	monday, err := ParseDate("2025-03-10")
	require.NoError(t, err)
	saturday, err := ParseDate("2025-03-15")
	require.NoError(t, err)

	t.Run("Closed on weekday outside schedule regardless of overrides", func(t *testing.T) {
		snap := weekdaySnapshot()
		assert.False(t, snap.IsSlotOpen(saturday, "09:00"))

		// An explicit clear entry cannot reopen a disallowed weekday.
		snap = weekdaySnapshot(DayOverride{Date: "2025-03-15"})
		assert.False(t, snap.IsSlotOpen(saturday, "09:00"))
	})

	t.Run("Closed for every time on a fully blocked date", func(t *testing.T) {
		snap := weekdaySnapshot(DayOverride{Date: "2025-03-10", FullDay: true})
		for _, slot := range snap.Config.Slots() {
			assert.False(t, snap.IsSlotOpen(monday, slot), "slot %s", slot)
		}
	})

	t.Run("Partially blocked date closes only the listed times", func(t *testing.T) {
		snap := weekdaySnapshot(DayOverride{
			Date:         "2025-03-10",
			BlockedTimes: []string{"09:00", "14:00"},
		})

		assert.False(t, snap.IsSlotOpen(monday, "09:00"))
		assert.False(t, snap.IsSlotOpen(monday, "14:00"))
		assert.True(t, snap.IsSlotOpen(monday, "08:00"))
		assert.True(t, snap.IsSlotOpen(monday, "10:00"))
		assert.True(t, snap.IsSlotOpen(monday, "17:00"))
	})

	t.Run("Open on an allowed weekday with no overrides", func(t *testing.T) {
		snap := weekdaySnapshot()
		assert.True(t, snap.IsSlotOpen(monday, "09:00"))
	})
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2025-03-10")
	assert.NoError(t, err)

	_, err = ParseDate("10/03/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestValidTime(t *testing.T) {
	assert.True(t, ValidTime("09:00"))
	assert.True(t, ValidTime("17:30"))
	assert.False(t, ValidTime("9am"))
	assert.False(t, ValidTime("25:00"))
	assert.False(t, ValidTime(""))
}
