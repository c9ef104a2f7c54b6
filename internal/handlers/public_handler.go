package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zlatne-makaze/barbershop-api/internal/cache"
	"github.com/zlatne-makaze/barbershop-api/internal/config"
	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
	"github.com/zlatne-makaze/barbershop-api/internal/httpresp"
	"github.com/zlatne-makaze/barbershop-api/internal/models"
	"github.com/zlatne-makaze/barbershop-api/internal/timezone"
	ucBooking "github.com/zlatne-makaze/barbershop-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db    *gorm.DB
	cfg   *config.Config
	cache *cache.AvailabilityCache

	availabilityUC *ucBooking.GetAvailability
	reservationUC  *ucBooking.CreateReservation
}

func NewPublicHandler(
	db *gorm.DB,
	cfg *config.Config,
	availabilityCache *cache.AvailabilityCache,
	availabilityUC *ucBooking.GetAvailability,
	reservationUC *ucBooking.CreateReservation,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		cfg:            cfg,
		cache:          availabilityCache,
		availabilityUC: availabilityUC,
		reservationUC:  reservationUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateReservationRequest struct {
	BarberID   uint   `json:"barber_id"`
	ServiceIDs []uint `json:"service_ids"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

////////////////////////////////////////////////////////
// BARBERS / SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not load barbers.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	barberIDStr := c.Query("barber_id")
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")

	if barberIDStr == "" || startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_params", "barber_id, start_date and end_date are required.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil || barberID == 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber.")
		return
	}

	loc := timezone.Location(h.cfg.Timezone)

	from, err := time.ParseInLocation("2006-01-02", startStr, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid start date.")
		return
	}
	to, err := time.ParseInLocation("2006-01-02", endStr, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid end date.")
		return
	}

	ctx := c.Request.Context()

	var days []ucBooking.DayAvailability
	if h.cache.Get(ctx, uint(barberID), startStr, endStr, &days) {
		c.JSON(http.StatusOK, gin.H{"barber_id": barberID, "days": days})
		return
	}

	days, err = h.availabilityUC.Execute(ctx, ucBooking.GetAvailabilityInput{
		BarberID: uint(barberID),
		From:     from,
		To:       to,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date_range"):
			httperr.BadRequest(c, "invalid_date_range", "End date is before start date.")
		case httperr.IsBusiness(err, "availability_unavailable"):
			// Never coerced into "no slots": a fully booked day and an
			// unreachable database must look different to the client.
			httperr.Unavailable(c, "availability_unavailable", "Cannot determine availability right now.")
		default:
			httperr.Internal(c, "availability_failed", "Could not compute availability.")
		}
		return
	}

	h.cache.Set(ctx, uint(barberID), startStr, endStr, days)

	c.JSON(http.StatusOK, gin.H{"barber_id": barberID, "days": days})
}

////////////////////////////////////////////////////////
// CREATE RESERVATION
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid JSON in request body.")
		return
	}

	res, err := h.reservationUC.Execute(
		c.Request.Context(),
		ucBooking.CreateReservationInput{
			BarberID:      req.BarberID,
			ServiceIDs:    req.ServiceIDs,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
		},
	)
	if err != nil {
		mapReservationError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), req.BarberID)

	c.JSON(http.StatusCreated, gin.H{
		"reservation_id": res.ID,
		"customer_id":    res.CustomerID,
		"message":        "Reservation created successfully",
	})
}
