package booking

import (
	"fmt"
	"time"

	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// Keeping it an integer makes slot arithmetic exact and the generator a
// pure function of its inputs.
type TimeOfDay int

func ParseTimeOfDay(hm string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		// Override rows written by older admin builds carry seconds.
		t, err = time.Parse("15:04:05", hm)
		if err != nil {
			return 0, httperr.ErrBusiness("invalid_time_of_day")
		}
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// At anchors the time-of-day on a calendar date in the given location.
func (t TimeOfDay) At(date time.Time, loc *time.Location) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		int(t)/60, int(t)%60, 0, 0,
		loc,
	)
}

// Window is a half-open working-hours interval [Start, End).
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

func ParseWindow(start, end string) (Window, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: s, End: e}, nil
}
