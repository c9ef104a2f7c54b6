package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zlatne-makaze/barbershop-api/internal/config"
	domain "github.com/zlatne-makaze/barbershop-api/internal/domain/booking"
	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
	"github.com/zlatne-makaze/barbershop-api/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		Timezone:         "Europe/Belgrade",
		DefaultOpenTime:  "09:00",
		DefaultCloseTime: "17:00",
		SlotMinutes:      30,
		LeadTimeMinutes:  120,
	}
}

func testLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Belgrade")
	require.NoError(t, err)
	return loc
}

func newAvailabilityUC(repo domain.Repository, now time.Time) *GetAvailability {
	uc := NewGetAvailability(repo, testConfig())
	uc.clock = func() time.Time { return now }
	return uc
}

func slotStarts(day DayAvailability) []string {
	out := make([]string, 0, len(day.Slots))
	for _, s := range day.Slots {
		out = append(out, s.Start)
	}
	return out
}

func TestAvailabilityDefaultDay(t *testing.T) {
	loc := testLocation(t)
	repo := newFakeRepository()
	uc := newAvailabilityUC(repo, time.Date(2026, 9, 1, 10, 0, 0, 0, loc))

	day := time.Date(2026, 9, 10, 0, 0, 0, 0, loc)
	days, err := uc.Execute(context.Background(), GetAvailabilityInput{
		BarberID: 1,
		From:     day,
		To:       day,
	})
	require.NoError(t, err)
	require.Len(t, days, 1)

	starts := slotStarts(days[0])
	assert.Len(t, starts, 16)
	assert.Equal(t, "09:00", starts[0])
	assert.Equal(t, "16:30", starts[len(starts)-1])
}

func TestAvailabilityClosedDayIsReportedEmpty(t *testing.T) {
	loc := testLocation(t)
	repo := newFakeRepository()
	repo.overrides = append(repo.overrides, models.AvailabilityOverride{
		BarberID:    1,
		Date:        "2026-09-10",
		IsAvailable: false,
	})
	uc := newAvailabilityUC(repo, time.Date(2026, 9, 1, 10, 0, 0, 0, loc))

	from := time.Date(2026, 9, 10, 0, 0, 0, 0, loc)
	to := time.Date(2026, 9, 11, 0, 0, 0, 0, loc)
	days, err := uc.Execute(context.Background(), GetAvailabilityInput{
		BarberID: 1,
		From:     from,
		To:       to,
	})
	require.NoError(t, err)
	require.Len(t, days, 2)

	// the closed day is present with an empty list, not missing
	assert.Equal(t, "2026-09-10", days[0].Date)
	assert.NotNil(t, days[0].Slots)
	assert.Empty(t, days[0].Slots)

	assert.Len(t, days[1].Slots, 16)
}

func TestAvailabilityCustomWindowWithReservation(t *testing.T) {
	loc := testLocation(t)
	repo := newFakeRepository()
	repo.overrides = append(repo.overrides, models.AvailabilityOverride{
		BarberID:          1,
		Date:              "2026-09-10",
		IsAvailable:       true,
		WorkingHoursStart: "10:00",
		WorkingHoursEnd:   "12:00",
	})
	repo.reservations = append(repo.reservations, models.Reservation{
		ID:        99,
		BarberID:  1,
		StartTime: time.Date(2026, 9, 10, 10, 30, 0, 0, loc),
		EndTime:   time.Date(2026, 9, 10, 11, 0, 0, 0, loc),
		Status:    string(domain.StatusScheduled),
	})
	uc := newAvailabilityUC(repo, time.Date(2026, 9, 1, 10, 0, 0, 0, loc))

	day := time.Date(2026, 9, 10, 0, 0, 0, 0, loc)
	days, err := uc.Execute(context.Background(), GetAvailabilityInput{
		BarberID: 1,
		From:     day,
		To:       day,
	})
	require.NoError(t, err)
	require.Len(t, days, 1)

	assert.Equal(t, []string{"10:00", "11:00", "11:30"}, slotStarts(days[0]))
}

func TestAvailabilityCancelledReservationFreesTheSlot(t *testing.T) {
	loc := testLocation(t)
	repo := newFakeRepository()
	repo.reservations = append(repo.reservations, models.Reservation{
		ID:        99,
		BarberID:  1,
		StartTime: time.Date(2026, 9, 10, 10, 0, 0, 0, loc),
		EndTime:   time.Date(2026, 9, 10, 10, 30, 0, 0, loc),
		Status:    string(domain.StatusCancelled),
	})
	uc := newAvailabilityUC(repo, time.Date(2026, 9, 1, 10, 0, 0, 0, loc))

	day := time.Date(2026, 9, 10, 0, 0, 0, 0, loc)
	days, err := uc.Execute(context.Background(), GetAvailabilityInput{
		BarberID: 1,
		From:     day,
		To:       day,
	})
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Contains(t, slotStarts(days[0]), "10:00")
}

func TestAvailabilityLeadTimeAppliesOnlyToday(t *testing.T) {
	loc := testLocation(t)
	repo := newFakeRepository()

	// 13:50 + 2h lead time = 15:50; today only 16:00 and 16:30 remain
	now := time.Date(2026, 9, 10, 13, 50, 0, 0, loc)
	uc := newAvailabilityUC(repo, now)

	from := time.Date(2026, 9, 10, 0, 0, 0, 0, loc)
	to := time.Date(2026, 9, 11, 0, 0, 0, 0, loc)
	days, err := uc.Execute(context.Background(), GetAvailabilityInput{
		BarberID: 1,
		From:     from,
		To:       to,
	})
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, []string{"16:00", "16:30"}, slotStarts(days[0]))
	assert.Len(t, days[1].Slots, 16) // tomorrow is unaffected
}

func TestAvailabilityInvalidDateRange(t *testing.T) {
	loc := testLocation(t)
	uc := newAvailabilityUC(newFakeRepository(), time.Date(2026, 9, 1, 10, 0, 0, 0, loc))

	_, err := uc.Execute(context.Background(), GetAvailabilityInput{
		BarberID: 1,
		From:     time.Date(2026, 9, 11, 0, 0, 0, 0, loc),
		To:       time.Date(2026, 9, 10, 0, 0, 0, 0, loc),
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_range"))
}

func TestAvailabilityStorageFailureIsNotAnEmptyDay(t *testing.T) {
	loc := testLocation(t)

	repo := newFakeRepository()
	repo.overridesErr = errors.New("connection refused")
	uc := newAvailabilityUC(repo, time.Date(2026, 9, 1, 10, 0, 0, 0, loc))

	day := time.Date(2026, 9, 10, 0, 0, 0, 0, loc)
	days, err := uc.Execute(context.Background(), GetAvailabilityInput{
		BarberID: 1,
		From:     day,
		To:       day,
	})
	assert.True(t, httperr.IsBusiness(err, "availability_unavailable"))
	assert.Nil(t, days)

	repo = newFakeRepository()
	repo.reservationsErr = errors.New("connection refused")
	uc = newAvailabilityUC(repo, time.Date(2026, 9, 1, 10, 0, 0, 0, loc))

	days, err = uc.Execute(context.Background(), GetAvailabilityInput{
		BarberID: 1,
		From:     day,
		To:       day,
	})
	assert.True(t, httperr.IsBusiness(err, "availability_unavailable"))
	assert.Nil(t, days)
}
