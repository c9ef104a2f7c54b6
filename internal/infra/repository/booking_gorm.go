package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/zlatne-makaze/barbershop-api/internal/domain/booking"
	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
	"github.com/zlatne-makaze/barbershop-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barber / Service
// --------------------------------------------------

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) GetServices(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND active = true", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) FindCustomerByPhone(
	ctx context.Context,
	phone string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customer).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *BookingGormRepository) CreateCustomer(
	ctx context.Context,
	customer *models.Customer,
) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) FindOverrides(
	ctx context.Context,
	barberID uint,
	fromDate string,
	toDate string,
) ([]models.AvailabilityOverride, error) {

	var overrides []models.AvailabilityOverride
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date >= ? AND date <= ?",
			barberID, fromDate, toDate,
		).
		Order("date ASC").
		Find(&overrides).Error; err != nil {
		return nil, err
	}

	return overrides, nil
}

func (r *BookingGormRepository) FindReservations(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Select("id", "barber_id", "start_time", "end_time").
		Where(
			"barber_id = ? AND status = 'scheduled' AND start_time >= ? AND start_time < ?",
			barberID, start, end,
		).
		Order("start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// --------------------------------------------------
// Reservation (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"barber_id = ? AND status = 'scheduled' AND start_time < ? AND end_time > ?",
			barberID,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}

func (r *BookingGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	// Services are pre-loaded rows; only the join table gets written.
	return r.db.WithContext(ctx).
		Omit("Services.*").
		Create(res).Error
}

// --------------------------------------------------
// Reservation (admin)
// --------------------------------------------------

func (r *BookingGormRepository) GetReservationForBarber(
	ctx context.Context,
	reservationID uint,
	barberID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", reservationID, barberID).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *BookingGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Omit("Services").Save(res).Error
}

func (r *BookingGormRepository) ListReservationsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	var reservations []models.Reservation

	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Services").
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID,
			start,
			end,
		).
		Order("start_time ASC").
		Find(&reservations).Error

	if err != nil {
		return nil, err
	}

	return reservations, nil
}

// --------------------------------------------------
// Overrides (admin schedule editing)
// --------------------------------------------------

func (r *BookingGormRepository) UpsertOverrides(
	ctx context.Context,
	overrides []models.AvailabilityOverride,
) error {

	if len(overrides) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "barber_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"is_available",
				"working_hours_start",
				"working_hours_end",
				"updated_at",
			}),
		}).
		Create(&overrides).Error
}

func (r *BookingGormRepository) DeleteOverrides(
	ctx context.Context,
	barberID uint,
	dates []string,
) error {

	if len(dates) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Where("barber_id = ? AND date IN ?", barberID, dates).
		Delete(&models.AvailabilityOverride{}).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
