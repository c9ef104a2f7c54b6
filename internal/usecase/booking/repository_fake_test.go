package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	domain "github.com/zlatne-makaze/barbershop-api/internal/domain/booking"
	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
	"github.com/zlatne-makaze/barbershop-api/internal/models"
)

// fakeRepository is the in-memory stand-in for the gorm repository. Its
// CreateReservation enforces the same no-overlap rule as the database
// exclusion constraint and reports it with the same error shape, so the
// use cases exercise both the fast-path check and the authoritative one.
type fakeRepository struct {
	barbers      map[uint]models.Barber
	services     map[uint]models.Service
	customers    []models.Customer
	overrides    []models.AvailabilityOverride
	reservations []models.Reservation

	nextID uint

	// failures to inject
	overridesErr    error
	reservationsErr error

	// when true, AssertNoTimeConflict lies so the insert path has to catch
	// the overlap, like a race between two clients
	skipConflictPrecheck bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		barbers:  map[uint]models.Barber{},
		services: map[uint]models.Service{},
		nextID:   1,
	}
}

func (f *fakeRepository) id() uint {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeRepository) addBarber(id uint) {
	f.barbers[id] = models.Barber{ID: id, Name: "Barber", Active: true}
}

func (f *fakeRepository) addService(id uint, durationMin int, priceRSD int64) {
	f.services[id] = models.Service{
		ID:          id,
		Name:        "Service",
		DurationMin: durationMin,
		PriceRSD:    priceRSD,
		Active:      true,
	}
}

// -------- Barber / Service --------

func (f *fakeRepository) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &b, nil
}

func (f *fakeRepository) GetServices(_ context.Context, ids []uint) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		if s, ok := f.services[id]; ok && s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

// -------- Customer --------

func (f *fakeRepository) FindCustomerByPhone(_ context.Context, phone string) (*models.Customer, error) {
	for i := range f.customers {
		if f.customers[i].Phone == phone {
			c := f.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) CreateCustomer(_ context.Context, customer *models.Customer) error {
	customer.ID = f.id()
	f.customers = append(f.customers, *customer)
	return nil
}

// -------- Availability --------

func (f *fakeRepository) FindOverrides(
	_ context.Context,
	barberID uint,
	fromDate string,
	toDate string,
) ([]models.AvailabilityOverride, error) {

	if f.overridesErr != nil {
		return nil, f.overridesErr
	}

	var out []models.AvailabilityOverride
	for _, o := range f.overrides {
		if o.BarberID == barberID && o.Date >= fromDate && o.Date <= toDate {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRepository) FindReservations(
	_ context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	if f.reservationsErr != nil {
		return nil, f.reservationsErr
	}

	var out []models.Reservation
	for _, r := range f.reservations {
		if r.BarberID != barberID || r.Status != string(domain.StatusScheduled) {
			continue
		}
		if !r.StartTime.Before(start) && r.StartTime.Before(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

// -------- Reservation (create / conflict) --------

func (f *fakeRepository) hasOverlap(barberID uint, start, end time.Time) bool {
	for _, r := range f.reservations {
		if r.BarberID != barberID || r.Status != string(domain.StatusScheduled) {
			continue
		}
		if domain.Overlaps(start, end, r.StartTime, r.EndTime) {
			return true
		}
	}
	return false
}

func (f *fakeRepository) AssertNoTimeConflict(
	_ context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) error {

	if f.skipConflictPrecheck {
		return nil
	}
	if f.hasOverlap(barberID, start, end) {
		return httperr.ErrBusiness("time_conflict")
	}
	return nil
}

func (f *fakeRepository) CreateReservation(_ context.Context, res *models.Reservation) error {
	if f.hasOverlap(res.BarberID, res.StartTime, res.EndTime) {
		return &pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"}
	}

	res.ID = f.id()
	f.reservations = append(f.reservations, *res)
	return nil
}

// -------- Reservation (admin) --------

func (f *fakeRepository) GetReservationForBarber(
	_ context.Context,
	reservationID uint,
	barberID uint,
) (*models.Reservation, error) {

	for i := range f.reservations {
		if f.reservations[i].ID == reservationID && f.reservations[i].BarberID == barberID {
			r := f.reservations[i]
			return &r, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeRepository) UpdateReservation(_ context.Context, res *models.Reservation) error {
	for i := range f.reservations {
		if f.reservations[i].ID == res.ID {
			f.reservations[i] = *res
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeRepository) ListReservationsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	var out []models.Reservation
	for _, r := range f.reservations {
		if r.BarberID != barberID {
			continue
		}
		if !r.StartTime.Before(start) && r.StartTime.Before(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

// -------- Overrides (admin schedule editing) --------

func (f *fakeRepository) UpsertOverrides(
	_ context.Context,
	overrides []models.AvailabilityOverride,
) error {

	for _, o := range overrides {
		replaced := false
		for i := range f.overrides {
			if f.overrides[i].BarberID == o.BarberID && f.overrides[i].Date == o.Date {
				o.ID = f.overrides[i].ID
				f.overrides[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			o.ID = f.id()
			f.overrides = append(f.overrides, o)
		}
	}
	return nil
}

func (f *fakeRepository) DeleteOverrides(
	_ context.Context,
	barberID uint,
	dates []string,
) error {

	drop := map[string]bool{}
	for _, d := range dates {
		drop[d] = true
	}

	kept := f.overrides[:0]
	for _, o := range f.overrides {
		if o.BarberID == barberID && drop[o.Date] {
			continue
		}
		kept = append(kept, o)
	}
	f.overrides = kept
	return nil
}

var _ domain.Repository = (*fakeRepository)(nil)
