package models

import "time"

// AvailabilityOverride is a per-barber, per-date deviation from the default
// schedule. No row for a (barber, date) pair means the default window
// applies; that absence is data, not an error.
type AvailabilityOverride struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"uniqueIndex:idx_override_barber_date" json:"barber_id"`
	Date     string `gorm:"type:date;uniqueIndex:idx_override_barber_date" json:"date"` // YYYY-MM-DD

	IsAvailable       bool   `json:"is_available"`
	WorkingHoursStart string `gorm:"size:8" json:"working_hours_start"` // HH:MM
	WorkingHoursEnd   string `gorm:"size:8" json:"working_hours_end"`   // HH:MM

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
