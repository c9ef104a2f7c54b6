package bookingflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
)

func TestFlowStartsAtBarber(t *testing.T) {
	f := New()
	assert.Equal(t, StepBarber, f.Step())
	assert.False(t, f.Confirmable())
}

func TestNextRequiresCompleteStep(t *testing.T) {
	f := New()

	err := f.Next()
	assert.True(t, httperr.IsBusiness(err, "step_incomplete"))
	assert.Equal(t, StepBarber, f.Step())

	f.BarberID = 1
	require.NoError(t, f.Next())
	assert.Equal(t, StepSchedule, f.Step())

	// schedule still empty
	err = f.Next()
	assert.True(t, httperr.IsBusiness(err, "step_incomplete"))
}

func TestFullWalkthrough(t *testing.T) {
	f := New()
	f.BarberID = 1
	require.NoError(t, f.Next())

	f.Date = "2026-09-10"
	f.SlotStart = "10:00"
	require.NoError(t, f.Next())

	f.ServiceIDs = []uint{2, 3}
	require.NoError(t, f.Next())

	f.Contact = Contact{Name: "Marko", Phone: "0601234567"}
	require.NoError(t, f.Next())

	assert.Equal(t, StepConfirm, f.Step())
	assert.True(t, f.Confirmable())

	// cannot advance past confirm
	err := f.Next()
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
}

func TestContactValidation(t *testing.T) {
	f := New()
	f.BarberID = 1
	f.Date = "2026-09-10"
	f.SlotStart = "10:00"
	f.ServiceIDs = []uint{2}
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())

	f.Contact = Contact{Name: "Marko", Phone: "123"} // too short
	err := f.Next()
	assert.True(t, httperr.IsBusiness(err, "step_incomplete"))

	f.Contact.Phone = "0601234567"
	f.Contact.Email = "not-an-email"
	err = f.Next()
	assert.True(t, httperr.IsBusiness(err, "step_incomplete"))

	f.Contact.Email = "marko@example.com"
	require.NoError(t, f.Next())
	assert.True(t, f.Confirmable())
}

func TestBackAlwaysAllowed(t *testing.T) {
	f := New()

	err := f.Back()
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	f.BarberID = 1
	require.NoError(t, f.Next())

	// going back works even though the schedule step is incomplete
	require.NoError(t, f.Back())
	assert.Equal(t, StepBarber, f.Step())
}

func TestConfirmableChecksEveryStep(t *testing.T) {
	f := New()
	f.BarberID = 1
	f.Date = "2026-09-10"
	f.SlotStart = "10:00"
	f.ServiceIDs = []uint{2}
	f.Contact = Contact{Name: "Marko", Phone: "0601234567"}

	require.NoError(t, f.Next())
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())
	require.True(t, f.Confirmable())

	// a later invalidation of an earlier step blocks confirmation
	f.ServiceIDs = nil
	assert.False(t, f.Confirmable())
}
