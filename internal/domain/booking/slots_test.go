package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
	"github.com/zlatne-makaze/barbershop-api/internal/models"
)

func mustWindow(t *testing.T, start, end string) Window {
	t.Helper()
	w, err := ParseWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(9*60+30), tod)
	assert.Equal(t, "09:30", tod.String())

	// legacy rows carry seconds
	tod, err = ParseTimeOfDay("17:00:00")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(17*60), tod)

	_, err = ParseTimeOfDay("25:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_time_of_day"))

	_, err = ParseTimeOfDay("not a time")
	assert.True(t, httperr.IsBusiness(err, "invalid_time_of_day"))
}

func TestSlotsFullDay(t *testing.T) {
	w := mustWindow(t, "09:00", "17:00")

	slots := Slots(w, 30*time.Minute)

	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0].String())
	assert.Equal(t, "16:30", slots[len(slots)-1].String())

	// strictly increasing
	for i := 1; i < len(slots); i++ {
		assert.Greater(t, slots[i], slots[i-1])
	}
}

func TestSlotsPartialTailDropped(t *testing.T) {
	w := mustWindow(t, "09:00", "09:45")

	slots := Slots(w, 30*time.Minute)

	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].String())
}

func TestSlotsEmptyWindow(t *testing.T) {
	assert.Empty(t, Slots(mustWindow(t, "10:00", "10:00"), 30*time.Minute))
	assert.Empty(t, Slots(mustWindow(t, "12:00", "10:00"), 30*time.Minute))
	assert.Empty(t, Slots(mustWindow(t, "09:00", "17:00"), 0))
}

func TestTimeOfDayAt(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Belgrade")
	require.NoError(t, err)

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, loc)
	tod, err := ParseTimeOfDay("14:30")
	require.NoError(t, err)

	at := tod.At(date, loc)
	assert.Equal(t, 14, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.Equal(t, loc, at.Location())
}

func TestOverlapsHalfOpen(t *testing.T) {
	loc := time.UTC
	at := func(h, m int) time.Time {
		return time.Date(2026, 9, 10, h, m, 0, 0, loc)
	}

	// back-to-back intervals never conflict
	assert.False(t, Overlaps(at(10, 0), at(10, 30), at(10, 30), at(11, 0)))
	assert.False(t, Overlaps(at(10, 30), at(11, 0), at(10, 0), at(10, 30)))

	// partial and full containment do
	assert.True(t, Overlaps(at(10, 0), at(11, 0), at(10, 30), at(11, 30)))
	assert.True(t, Overlaps(at(10, 0), at(12, 0), at(10, 30), at(11, 0)))
	assert.True(t, Overlaps(at(10, 30), at(11, 0), at(10, 0), at(12, 0)))
	assert.True(t, Overlaps(at(10, 0), at(10, 30), at(10, 0), at(10, 30)))
}

func TestScheduleFor(t *testing.T) {
	sched, err := ScheduleFor(nil)
	require.NoError(t, err)
	assert.Equal(t, DayDefault, sched.Kind)

	sched, err = ScheduleFor(&models.AvailabilityOverride{IsAvailable: false})
	require.NoError(t, err)
	assert.Equal(t, DayClosed, sched.Kind)

	sched, err = ScheduleFor(&models.AvailabilityOverride{
		IsAvailable:       true,
		WorkingHoursStart: "10:00",
		WorkingHoursEnd:   "14:00",
	})
	require.NoError(t, err)
	assert.Equal(t, DayOpen, sched.Kind)
	assert.Equal(t, "10:00", sched.Window.Start.String())
	assert.Equal(t, "14:00", sched.Window.End.String())

	_, err = ScheduleFor(&models.AvailabilityOverride{
		IsAvailable:       true,
		WorkingHoursStart: "garbage",
		WorkingHoursEnd:   "14:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_time_of_day"))
}

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(StatusScheduled))
	assert.True(t, httperr.IsBusiness(CanCancel(StatusCancelled), "invalid_state"))
}
