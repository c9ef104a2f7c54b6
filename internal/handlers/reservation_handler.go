package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zlatne-makaze/barbershop-api/internal/cache"
	"github.com/zlatne-makaze/barbershop-api/internal/config"
	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
	"github.com/zlatne-makaze/barbershop-api/internal/middleware"
	"github.com/zlatne-makaze/barbershop-api/internal/timezone"
	ucBooking "github.com/zlatne-makaze/barbershop-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	cfg   *config.Config
	cache *cache.AvailabilityCache

	listByDate  *ucBooking.ListReservationsByDate
	listByMonth *ucBooking.ListReservationsByMonth
	cancel      *ucBooking.CancelReservation
}

func NewReservationHandler(
	cfg *config.Config,
	availabilityCache *cache.AvailabilityCache,
	listByDate *ucBooking.ListReservationsByDate,
	listByMonth *ucBooking.ListReservationsByMonth,
	cancel *ucBooking.CancelReservation,
) *ReservationHandler {
	return &ReservationHandler{
		cfg:         cfg,
		cache:       availabilityCache,
		listByDate:  listByDate,
		listByMonth: listByMonth,
		cancel:      cancel,
	}
}

func (h *ReservationHandler) barberIDParam(c *gin.Context) (uint, bool) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 64)
	if err != nil || barberID == 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber.")
		return 0, false
	}
	return uint(barberID), true
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *ReservationHandler) ListByDate(c *gin.Context) {
	barberID, ok := h.barberIDParam(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(h.cfg.Timezone))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	reservations, err := h.listByDate.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Could not load reservations.")
		return
	}

	c.JSON(200, reservations)
}

// ======================================================
// LIST BY MONTH
// ======================================================

func (h *ReservationHandler) ListByMonth(c *gin.Context) {
	barberID, ok := h.barberIDParam(c)
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	reservations, err := h.listByMonth.Execute(c.Request.Context(), barberID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Could not load reservations.")
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"reservations": reservations,
	})
}

// ======================================================
// CANCEL
// ======================================================

func (h *ReservationHandler) Cancel(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	barberID, ok := h.barberIDParam(c)
	if !ok {
		return
	}

	reservationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || reservationID == 0 {
		httperr.BadRequest(c, "invalid_reservation_id", "Invalid reservation.")
		return
	}

	res, err := h.cancel.Execute(c.Request.Context(), adminID, barberID, uint(reservationID))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "reservation_not_found"):
			httperr.NotFound(c, "reservation_not_found", "Reservation not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Reservation cannot be cancelled.")
		default:
			httperr.Internal(c, "failed_to_cancel", "Could not cancel the reservation.")
		}
		return
	}

	h.cache.Invalidate(c.Request.Context(), barberID)

	c.JSON(200, res)
}
