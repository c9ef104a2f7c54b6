package booking

import (
	"context"
	"time"

	domain "github.com/zlatne-makaze/barbershop-api/internal/domain/booking"
	"github.com/zlatne-makaze/barbershop-api/internal/dto"
	"github.com/zlatne-makaze/barbershop-api/internal/timezone"
)

// ======================================================
// BY DATE (admin day view)
// ======================================================

type ListReservationsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListReservationsByDate(repo domain.Repository, tz string) *ListReservationsByDate {
	return &ListReservationsByDate{
		repo: repo,
		loc:  timezone.Location(tz),
	}
}

func (uc *ListReservationsByDate) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]dto.ReservationListDTO, error) {

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		uc.loc,
	)
	end := start.Add(24 * time.Hour)

	reservations, err := uc.repo.ListReservationsForPeriod(ctx, barberID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, dto.FromReservation(res))
	}
	return out, nil
}

// ======================================================
// BY MONTH (admin calendar view)
// ======================================================

type ListReservationsByMonth struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListReservationsByMonth(repo domain.Repository, tz string) *ListReservationsByMonth {
	return &ListReservationsByMonth{
		repo: repo,
		loc:  timezone.Location(tz),
	}
}

func (uc *ListReservationsByMonth) Execute(
	ctx context.Context,
	barberID uint,
	year int,
	month int,
) ([]dto.ReservationListDTO, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.loc)
	end := start.AddDate(0, 1, 0)

	reservations, err := uc.repo.ListReservationsForPeriod(ctx, barberID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, dto.FromReservation(res))
	}
	return out, nil
}
