package booking

import "github.com/zlatne-makaze/barbershop-api/internal/models"

// DayScheduleKind is the explicit three-way outcome of an override lookup.
// "No row" is meaningful data (default hours apply), so it gets its own
// case instead of a nullable window.
type DayScheduleKind int

const (
	// DayDefault means no override row exists; the configured default
	// window applies.
	DayDefault DayScheduleKind = iota

	// DayClosed means the barber is fully unavailable that date.
	DayClosed

	// DayOpen means the override supplies non-default working hours.
	DayOpen
)

type DaySchedule struct {
	Kind   DayScheduleKind
	Window Window
}

// ScheduleFor maps an override row (or its absence) onto the day schedule.
func ScheduleFor(override *models.AvailabilityOverride) (DaySchedule, error) {
	if override == nil {
		return DaySchedule{Kind: DayDefault}, nil
	}

	if !override.IsAvailable {
		return DaySchedule{Kind: DayClosed}, nil
	}

	w, err := ParseWindow(override.WorkingHoursStart, override.WorkingHoursEnd)
	if err != nil {
		return DaySchedule{}, err
	}
	return DaySchedule{Kind: DayOpen, Window: w}, nil
}
