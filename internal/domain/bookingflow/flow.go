// Package bookingflow models the multi-step booking dialog as an explicit
// state machine: named steps, forward transitions gated by per-step
// completion, backward transitions always allowed. Confirming with an
// incomplete form is impossible by construction.
package bookingflow

import (
	"strings"

	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
	"github.com/zlatne-makaze/barbershop-api/internal/validators"
)

type Step int

const (
	StepBarber Step = iota
	StepSchedule
	StepService
	StepContact
	StepConfirm
)

func (s Step) String() string {
	switch s {
	case StepBarber:
		return "barber"
	case StepSchedule:
		return "schedule"
	case StepService:
		return "service"
	case StepContact:
		return "contact"
	case StepConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

type Contact struct {
	Name  string
	Phone string
	Email string
}

type Flow struct {
	step Step

	BarberID   uint
	Date       string // YYYY-MM-DD
	SlotStart  string // HH:MM
	ServiceIDs []uint
	Contact    Contact
}

func New() *Flow {
	return &Flow{step: StepBarber}
}

func (f *Flow) Step() Step {
	return f.step
}

// complete reports whether the given step's inputs are filled in.
func (f *Flow) complete(s Step) bool {
	switch s {
	case StepBarber:
		return f.BarberID > 0
	case StepSchedule:
		return f.Date != "" && f.SlotStart != ""
	case StepService:
		return len(f.ServiceIDs) > 0
	case StepContact:
		if strings.TrimSpace(f.Contact.Name) == "" {
			return false
		}
		if _, ok := validators.NormalizePhone(f.Contact.Phone); !ok {
			return false
		}
		if email := strings.TrimSpace(f.Contact.Email); email != "" {
			return validators.IsEmailSyntaxValid(email)
		}
		return true
	default:
		return true
	}
}

// Next advances one step. The current step must be complete.
func (f *Flow) Next() error {
	if f.step == StepConfirm {
		return httperr.ErrBusiness("invalid_transition")
	}
	if !f.complete(f.step) {
		return httperr.ErrBusiness("step_incomplete")
	}
	f.step++
	return nil
}

// Back moves one step backwards; always allowed except from the first step.
func (f *Flow) Back() error {
	if f.step == StepBarber {
		return httperr.ErrBusiness("invalid_transition")
	}
	f.step--
	return nil
}

// Confirmable reports whether every step up to confirmation is complete.
func (f *Flow) Confirmable() bool {
	if f.step != StepConfirm {
		return false
	}
	for s := StepBarber; s < StepConfirm; s++ {
		if !f.complete(s) {
			return false
		}
	}
	return true
}
