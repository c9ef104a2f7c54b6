package booking

import (
	"context"
	"log"
	"time"

	"github.com/zlatne-makaze/barbershop-api/internal/config"
	domain "github.com/zlatne-makaze/barbershop-api/internal/domain/booking"
	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
	"github.com/zlatne-makaze/barbershop-api/internal/models"
	"github.com/zlatne-makaze/barbershop-api/internal/timezone"
)

const dateFormat = "2006-01-02"

// ======================================================
// INPUT / OUTPUT
// ======================================================

type GetAvailabilityInput struct {
	BarberID uint
	From     time.Time // inclusive
	To       time.Time // inclusive
}

type DayAvailability struct {
	Date  string            `json:"date"`
	Slots []domain.TimeSlot `json:"slots"`
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo domain.Repository

	defaultWindow domain.Window
	slotLen       time.Duration
	leadTime      time.Duration
	loc           *time.Location

	clock func() time.Time
}

func NewGetAvailability(repo domain.Repository, cfg *config.Config) *GetAvailability {
	window, err := domain.ParseWindow(cfg.DefaultOpenTime, cfg.DefaultCloseTime)
	if err != nil {
		log.Fatalf("invalid default working hours: %s-%s", cfg.DefaultOpenTime, cfg.DefaultCloseTime)
	}

	loc := timezone.Location(cfg.Timezone)

	return &GetAvailability{
		repo:          repo,
		defaultWindow: window,
		slotLen:       cfg.SlotLength(),
		leadTime:      cfg.LeadTime(),
		loc:           loc,
		clock:         func() time.Time { return time.Now().In(loc) },
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute resolves, for every date in the inclusive range, the ordered list
// of bookable slot starts. Days without a single free slot are still
// reported (empty list) so callers can tell "fully booked" from "unknown";
// a storage failure never degrades into an empty result.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) ([]DayAvailability, error) {

	fromDay := startOfDay(in.From.In(uc.loc))
	toDay := startOfDay(in.To.In(uc.loc))
	if toDay.Before(fromDay) {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	overrides, err := uc.repo.FindOverrides(
		ctx,
		in.BarberID,
		fromDay.Format(dateFormat),
		toDay.Format(dateFormat),
	)
	if err != nil {
		log.Println("availability: overrides lookup failed:", err)
		return nil, httperr.ErrBusiness("availability_unavailable")
	}

	overrideByDate := make(map[string]*models.AvailabilityOverride, len(overrides))
	for i := range overrides {
		overrideByDate[overrides[i].Date] = &overrides[i]
	}

	reservations, err := uc.repo.FindReservations(
		ctx,
		in.BarberID,
		fromDay,
		toDay.AddDate(0, 0, 1),
	)
	if err != nil {
		log.Println("availability: reservations lookup failed:", err)
		return nil, httperr.ErrBusiness("availability_unavailable")
	}

	// A reservation belongs to the calendar date of its start_time in the
	// shop's timezone.
	resByDate := make(map[string][]models.Reservation)
	for _, res := range reservations {
		key := res.StartTime.In(uc.loc).Format(dateFormat)
		resByDate[key] = append(resByDate[key], res)
	}

	now := uc.clock().In(uc.loc)
	today := now.Format(dateFormat)
	minStart := now.Add(uc.leadTime)
	step := domain.TimeOfDay(uc.slotLen / time.Minute)

	var days []DayAvailability

	for d := fromDay; !d.After(toDay); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(dateFormat)

		sched, err := domain.ScheduleFor(overrideByDate[dateStr])
		if err != nil {
			return nil, err
		}

		if sched.Kind == domain.DayClosed {
			days = append(days, DayAvailability{Date: dateStr, Slots: []domain.TimeSlot{}})
			continue
		}

		window := uc.defaultWindow
		if sched.Kind == domain.DayOpen {
			window = sched.Window
		}

		free := []domain.TimeSlot{}
		for _, slot := range domain.Slots(window, uc.slotLen) {
			slotStart := slot.At(d, uc.loc)
			slotEnd := slotStart.Add(uc.slotLen)

			if dateStr == today && slotStart.Before(minStart) {
				continue
			}

			conflict := false
			for _, res := range resByDate[dateStr] {
				if domain.Overlaps(slotStart, slotEnd, res.StartTime, res.EndTime) {
					conflict = true
					break
				}
			}

			if !conflict {
				free = append(free, domain.TimeSlot{
					Start: slot.String(),
					End:   (slot + step).String(),
				})
			}
		}

		days = append(days, DayAvailability{Date: dateStr, Slots: free})
	}

	return days, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
