package booking

import (
	"context"
	"strings"
	"time"

	"github.com/zlatne-makaze/barbershop-api/internal/audit"
	"github.com/zlatne-makaze/barbershop-api/internal/config"
	domain "github.com/zlatne-makaze/barbershop-api/internal/domain/booking"
	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
	"github.com/zlatne-makaze/barbershop-api/internal/models"
	"github.com/zlatne-makaze/barbershop-api/internal/timezone"
	"github.com/zlatne-makaze/barbershop-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	BarberID   uint
	ServiceIDs []uint

	StartTime time.Time
	EndTime   time.Time

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	slotLen  time.Duration
	leadTime time.Duration
	loc      *time.Location

	clock func() time.Time
}

func NewCreateReservation(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
	cfg *config.Config,
) *CreateReservation {

	loc := timezone.Location(cfg.Timezone)

	return &CreateReservation{
		repo:     repo,
		audit:    dispatcher,
		slotLen:  cfg.SlotLength(),
		leadTime: cfg.LeadTime(),
		loc:      loc,
		clock:    func() time.Time { return time.Now().In(loc) },
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Structural validation, before any persistence call
	// --------------------------------------------------
	phone, verr := uc.validate(&in)
	if verr != nil {
		return nil, verr
	}

	// --------------------------------------------------
	// 2. Barber and services
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil || !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	services, err := uc.repo.GetServices(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(in.ServiceIDs) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	totalMin := 0
	for _, s := range services {
		totalMin += s.DurationMin
	}

	slotMin := int(uc.slotLen / time.Minute)
	requiredSlots := (totalMin + slotMin - 1) / slotMin
	requiredDur := time.Duration(requiredSlots*slotMin) * time.Minute

	if in.EndTime.Sub(in.StartTime) != requiredDur {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	// --------------------------------------------------
	// 3. Minimum lead time
	// --------------------------------------------------
	if in.StartTime.Before(uc.clock().Add(uc.leadTime)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 4. Customer (find by phone, create if absent)
	// --------------------------------------------------
	customer, err := uc.repo.FindCustomerByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		customer = &models.Customer{
			Name:  strings.TrimSpace(in.CustomerName),
			Phone: phone,
			Email: strings.TrimSpace(in.CustomerEmail),
		}
		if err := uc.repo.CreateCustomer(ctx, customer); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 5. Conflict fast path
	// --------------------------------------------------
	// Time passes between the client reading availability and submitting;
	// this pre-check catches the common stale case cheaply. The insert
	// below is still the authoritative arbiter.
	if err := uc.repo.AssertNoTimeConflict(
		ctx,
		in.BarberID,
		in.StartTime,
		in.EndTime,
	); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Insert
	// --------------------------------------------------
	res := &models.Reservation{
		BarberID:      in.BarberID,
		CustomerID:    &customer.ID,
		Services:      services,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		Status:        string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{
			"barber_id": in.BarberID,
			"start":     in.StartTime,
			"end":       in.EndTime,
		},
	})

	return res, nil
}

// ======================================================
// VALIDATION
// ======================================================

func (uc *CreateReservation) validate(in *CreateReservationInput) (string, error) {
	ve := &httperr.ValidationError{}

	if in.BarberID == 0 {
		ve.Add("barber_id", "Barber ID must be a positive integer")
	}

	if len(in.ServiceIDs) == 0 {
		ve.Add("service_ids", "At least one service is required")
	}
	for _, id := range in.ServiceIDs {
		if id == 0 {
			ve.Add("service_ids", "Service ID must be a positive integer")
			break
		}
	}

	if strings.TrimSpace(in.CustomerName) == "" {
		ve.Add("customer_name", "Customer name is required")
	}

	phone := ""
	if strings.TrimSpace(in.CustomerPhone) == "" {
		ve.Add("customer_phone", "Customer phone is required")
	} else {
		var ok bool
		phone, ok = validators.NormalizePhone(in.CustomerPhone)
		if !ok {
			ve.Add("customer_phone", "Invalid phone number format")
		}
	}

	if email := strings.TrimSpace(in.CustomerEmail); email != "" {
		if !validators.IsEmailSyntaxValid(email) {
			ve.Add("customer_email", "Valid email is required")
		}
	}

	if in.StartTime.IsZero() {
		ve.Add("start_time", "Start time must be a valid datetime")
	}
	if in.EndTime.IsZero() {
		ve.Add("end_time", "End time must be a valid datetime")
	}
	if !in.StartTime.IsZero() && !in.EndTime.IsZero() && !in.EndTime.After(in.StartTime) {
		ve.Add("end_time", "End time must be after start time")
	}

	if ve.HasErrors() {
		return "", ve
	}
	return phone, nil
}
