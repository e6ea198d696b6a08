package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altorracars/dealership-backend/internal/availability"
)

func testSnapshot(overrides ...availability.DayOverride) *availability.Snapshot {
	snap := &availability.Snapshot{
		Config: availability.Config{
			WeeklyDays: []time.Weekday{
				time.Monday, time.Tuesday, time.Wednesday,
				time.Thursday, time.Friday,
			},
			StartHour:           9,
			EndHour:             12,
			SlotIntervalMinutes: 60,
		},
		Overrides: make(map[string]availability.DayOverride),
	}
	for _, ov := range overrides {
		snap.Overrides[ov.Date] = ov
	}
	return snap
}

func cellByDate(t *testing.T, cells []DayCell, date string) DayCell {
	t.Helper()
	for _, c := range cells {
		if c.Date == date {
			return c
		}
	}
	t.Fatalf("no cell for %s", date)
	return DayCell{}
}

func TestProjectMonth(t *testing.T) {
	// Fixed "today" in the middle of March 2025; 2025-03-10 is a Monday.
	today := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	snap := testSnapshot(
		availability.DayOverride{Date: "2025-03-12", FullDay: true},
		availability.DayOverride{Date: "2025-03-13", BlockedTimes: []string{"09:00"}},
	)
	counts := map[string]int{
		"2025-03-14": 2,
	}

	cells := ProjectMonth(2025, time.March, today, snap, counts)
	require.Len(t, cells, 31)

	t.Run("Past days are inert even when otherwise open", func(t *testing.T) {
		c := cellByDate(t, cells, "2025-03-07") // a Friday before today
		assert.True(t, c.IsPast)
		assert.Equal(t, StatePast, c.State)
		assert.False(t, c.Editable)
	})

	t.Run("Disallowed weekdays are inert", func(t *testing.T) {
		c := cellByDate(t, cells, "2025-03-15") // Saturday
		assert.False(t, c.IsAllowedWeekday)
		assert.Equal(t, StateInert, c.State)
		assert.False(t, c.Editable)
	})

	t.Run("Fully blocked day classifies as blocked and stays editable", func(t *testing.T) {
		c := cellByDate(t, cells, "2025-03-12")
		assert.True(t, c.IsFullyBlocked)
		assert.Equal(t, StateBlocked, c.State)
		assert.True(t, c.Editable)
	})

	t.Run("Partial blocks classify as partial", func(t *testing.T) {
		c := cellByDate(t, cells, "2025-03-13")
		assert.True(t, c.HasPartialBlocks)
		assert.Equal(t, StatePartial, c.State)
		assert.True(t, c.Editable)
	})

	t.Run("Appointments alone classify as partial", func(t *testing.T) {
		c := cellByDate(t, cells, "2025-03-14")
		assert.False(t, c.HasPartialBlocks)
		assert.Equal(t, 2, c.AppointmentCount)
		assert.Equal(t, StatePartial, c.State)
	})

	t.Run("Unremarkable future weekday is open", func(t *testing.T) {
		c := cellByDate(t, cells, "2025-03-11")
		assert.Equal(t, StateOpen, c.State)
		assert.True(t, c.Editable)
	})

	t.Run("Past wins over every other classification", func(t *testing.T) {
		pastSnap := testSnapshot(
			availability.DayOverride{Date: "2025-03-05", FullDay: true},
		)
		pastCells := ProjectMonth(2025, time.March, today, pastSnap, nil)
		c := cellByDate(t, pastCells, "2025-03-05")
		assert.Equal(t, StatePast, c.State)
	})

	t.Run("Today is not past", func(t *testing.T) {
		c := cellByDate(t, cells, "2025-03-10")
		assert.False(t, c.IsPast)
	})
}

func TestProjectDay(t *testing.T) {
	snap := testSnapshot(
		availability.DayOverride{Date: "2025-03-10", BlockedTimes: []string{"10:00"}},
	)
	monday, err := availability.ParseDate("2025-03-10")
	require.NoError(t, err)

	views := ProjectDay(monday, snap, []string{"09:00"})
	require.Len(t, views, 3)

	assert.Equal(t, SlotView{Time: "09:00", Open: true, Taken: true}, views[0])
	assert.Equal(t, SlotView{Time: "10:00", Open: false, Taken: false}, views[1])
	assert.Equal(t, SlotView{Time: "11:00", Open: true, Taken: false}, views[2])
}
