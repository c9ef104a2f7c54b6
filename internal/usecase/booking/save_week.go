package booking

import (
	"context"
	"time"

	"github.com/zlatne-makaze/barbershop-api/internal/audit"
	"github.com/zlatne-makaze/barbershop-api/internal/config"
	domain "github.com/zlatne-makaze/barbershop-api/internal/domain/booking"
	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
	"github.com/zlatne-makaze/barbershop-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type WeekDayInput struct {
	Date        string // YYYY-MM-DD
	IsAvailable bool

	// Optional custom hours; empty means the default window.
	WorkingHoursStart string
	WorkingHoursEnd   string
}

type SaveWeekInput struct {
	BarberID uint
	Days     []WeekDayInput
}

// ======================================================
// USE CASE
// ======================================================

// SaveWeekOverrides implements the admin "save week" action. Days marked
// unavailable or given custom hours get an override row upserted; days
// reverted to default-available get their row deleted, because the absence
// of a row is what "default schedule applies" means.
type SaveWeekOverrides struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	defaultOpen  string
	defaultClose string
}

func NewSaveWeekOverrides(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
	cfg *config.Config,
) *SaveWeekOverrides {
	return &SaveWeekOverrides{
		repo:         repo,
		audit:        dispatcher,
		defaultOpen:  cfg.DefaultOpenTime,
		defaultClose: cfg.DefaultCloseTime,
	}
}

func (uc *SaveWeekOverrides) Execute(
	ctx context.Context,
	adminID uint,
	in SaveWeekInput,
) error {

	if in.BarberID == 0 || len(in.Days) == 0 {
		return httperr.ErrBusiness("invalid_request")
	}

	var upserts []models.AvailabilityOverride
	var deletes []string

	for _, day := range in.Days {
		if _, err := time.Parse(dateFormat, day.Date); err != nil {
			return httperr.ErrBusiness("invalid_date")
		}

		switch {
		case !day.IsAvailable:
			upserts = append(upserts, models.AvailabilityOverride{
				BarberID:          in.BarberID,
				Date:              day.Date,
				IsAvailable:       false,
				WorkingHoursStart: uc.defaultOpen,
				WorkingHoursEnd:   uc.defaultClose,
			})

		case uc.hasCustomHours(day):
			if _, err := domain.ParseWindow(day.WorkingHoursStart, day.WorkingHoursEnd); err != nil {
				return httperr.ErrBusiness("invalid_working_hours")
			}
			upserts = append(upserts, models.AvailabilityOverride{
				BarberID:          in.BarberID,
				Date:              day.Date,
				IsAvailable:       true,
				WorkingHoursStart: day.WorkingHoursStart,
				WorkingHoursEnd:   day.WorkingHoursEnd,
			})

		default:
			deletes = append(deletes, day.Date)
		}
	}

	if err := uc.repo.UpsertOverrides(ctx, upserts); err != nil {
		return err
	}
	if err := uc.repo.DeleteOverrides(ctx, in.BarberID, deletes); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &adminID,
		Action: "availability_week_saved",
		Entity: "availability_override",
		Metadata: map[string]any{
			"barber_id": in.BarberID,
			"upserted":  len(upserts),
			"deleted":   len(deletes),
		},
	})

	return nil
}

func (uc *SaveWeekOverrides) hasCustomHours(day WeekDayInput) bool {
	if day.WorkingHoursStart == "" || day.WorkingHoursEnd == "" {
		return false
	}
	return day.WorkingHoursStart != uc.defaultOpen || day.WorkingHoursEnd != uc.defaultClose
}
