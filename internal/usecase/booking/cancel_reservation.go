package booking

import (
	"context"

	"github.com/zlatne-makaze/barbershop-api/internal/audit"
	domain "github.com/zlatne-makaze/barbershop-api/internal/domain/booking"
	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
	"github.com/zlatne-makaze/barbershop-api/internal/models"
	"github.com/zlatne-makaze/barbershop-api/internal/timezone"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: dispatcher,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	adminID uint,
	barberID uint,
	reservationID uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationForBarber(ctx, reservationID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if err := domain.CanCancel(domain.Status(res.Status)); err != nil {
		return nil, err
	}

	now := timezone.Now()
	res.Status = string(domain.StatusCancelled)
	res.CancelledAt = &now

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
