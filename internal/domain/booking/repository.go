package booking

import (
	"context"
	"time"

	"github.com/zlatne-makaze/barbershop-api/internal/models"
)

type Repository interface {
	// -------- Barber / Service --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetServices(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Customer --------
	// FindCustomerByPhone returns (nil, nil) when no customer exists for
	// the normalized phone; an existing customer is the common case, not
	// an error.
	FindCustomerByPhone(
		ctx context.Context,
		phone string,
	) (*models.Customer, error)

	CreateCustomer(
		ctx context.Context,
		customer *models.Customer,
	) error

	// -------- Availability --------
	FindOverrides(
		ctx context.Context,
		barberID uint,
		fromDate string,
		toDate string,
	) ([]models.AvailabilityOverride, error)

	FindReservations(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)

	// -------- Reservation (create / conflict) --------
	// CreateReservation inserts the row plus its service links. The
	// database's exclusion constraint is the authoritative overlap
	// arbiter; callers classify the returned error.
	CreateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Reservation (admin) --------
	GetReservationForBarber(
		ctx context.Context,
		reservationID uint,
		barberID uint,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	ListReservationsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)

	// -------- Overrides (admin schedule editing) --------
	UpsertOverrides(
		ctx context.Context,
		overrides []models.AvailabilityOverride,
	) error

	DeleteOverrides(
		ctx context.Context,
		barberID uint,
		dates []string,
	) error
}
