package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
)

// mapReservationError translates the booking taxonomy onto HTTP. Validation
// and conflict errors carry actionable detail; permission and generic
// failures stay opaque to end users but get logged with the cause.
func mapReservationError(c *gin.Context, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "validation_failed",
			"message":    "Invalid request data",
			"errors":     ve.Fields,
		})
		return
	}

	switch {
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "The selected slot is no longer available.")

	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "The selected slot is too soon or in the past.")

	case httperr.IsBusiness(err, "invalid_duration"):
		httperr.BadRequest(c, "invalid_duration", "Reservation length does not match the selected services.")

	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.BadRequest(c, "barber_not_found", "Unknown or inactive barber.")

	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Unknown or inactive service.")

	case httperr.IsExclusionConflict(err):
		httperr.Conflict(c, "time_conflict", "The selected slot is no longer available.")

	case httperr.IsPermissionDenied(err):
		log.Println("reservation write denied by storage policy:", err)
		httperr.Forbidden(c, "permission_denied", "Booking is temporarily unavailable.")

	default:
		log.Println("reservation create failed:", err)
		httperr.Internal(c, "failed_to_create_reservation", "Could not create the reservation.")
	}
}
