package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zlatne-makaze/barbershop-api/internal/cache"
	"github.com/zlatne-makaze/barbershop-api/internal/httperr"
	"github.com/zlatne-makaze/barbershop-api/internal/middleware"
	"github.com/zlatne-makaze/barbershop-api/internal/models"
	ucBooking "github.com/zlatne-makaze/barbershop-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityAdminHandler struct {
	db       *gorm.DB
	cache    *cache.AvailabilityCache
	saveWeek *ucBooking.SaveWeekOverrides
}

func NewAvailabilityAdminHandler(
	db *gorm.DB,
	availabilityCache *cache.AvailabilityCache,
	saveWeek *ucBooking.SaveWeekOverrides,
) *AvailabilityAdminHandler {
	return &AvailabilityAdminHandler{
		db:       db,
		cache:    availabilityCache,
		saveWeek: saveWeek,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type WeekDayRequest struct {
	Date              string `json:"date" binding:"required"`
	IsAvailable       bool   `json:"is_available"`
	WorkingHoursStart string `json:"working_hours_start"`
	WorkingHoursEnd   string `json:"working_hours_end"`
}

type SaveWeekRequest struct {
	BarberID uint             `json:"barber_id" binding:"required"`
	Days     []WeekDayRequest `json:"days" binding:"required"`
}

// ======================================================
// GET (overrides for the admin calendar)
// ======================================================

func (h *AvailabilityAdminHandler) GetOverrides(c *gin.Context) {
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

	for _, s := range []string{startStr, endStr} {
		if _, err := time.Parse("2006-01-02", s); err != nil {
			httperr.BadRequest(c, "invalid_date", "Dates must be YYYY-MM-DD.")
			return
		}
	}

	var overrides []models.AvailabilityOverride
	if err := h.db.
		Where(
			"barber_id = ? AND date >= ? AND date <= ?",
			barberID, startStr, endStr,
		).
		Order("date ASC").
		Find(&overrides).Error; err != nil {
		httperr.Internal(c, "failed_to_load_overrides", "Could not load availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber_id": barberID,
		"overrides": overrides,
	})
}

// ======================================================
// PUT (save week)
// ======================================================

func (h *AvailabilityAdminHandler) SaveWeek(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req SaveWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	days := make([]ucBooking.WeekDayInput, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, ucBooking.WeekDayInput{
			Date:              d.Date,
			IsAvailable:       d.IsAvailable,
			WorkingHoursStart: d.WorkingHoursStart,
			WorkingHoursEnd:   d.WorkingHoursEnd,
		})
	}

	err := h.saveWeek.Execute(
		c.Request.Context(),
		adminID,
		ucBooking.SaveWeekInput{
			BarberID: req.BarberID,
			Days:     days,
		},
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_request"):
			httperr.BadRequest(c, "invalid_request", "Barber and at least one day are required.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Dates must be YYYY-MM-DD.")
		case httperr.IsBusiness(err, "invalid_working_hours"):
			httperr.BadRequest(c, "invalid_working_hours", "Working hours must be HH:MM.")
		default:
			httperr.Internal(c, "failed_to_save_week", "Could not save availability.")
		}
		return
	}

	h.cache.Invalidate(c.Request.Context(), req.BarberID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
