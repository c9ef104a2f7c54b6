package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zlatne-makaze/barbershop-api/internal/audit"
	"github.com/zlatne-makaze/barbershop-api/internal/cache"
	"github.com/zlatne-makaze/barbershop-api/internal/config"
	"github.com/zlatne-makaze/barbershop-api/internal/handlers"
	infraRepo "github.com/zlatne-makaze/barbershop-api/internal/infra/repository"
	"github.com/zlatne-makaze/barbershop-api/internal/media"
	"github.com/zlatne-makaze/barbershop-api/internal/middleware"
	ucBooking "github.com/zlatne-makaze/barbershop-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	availabilityCache := cache.New(cfg.RedisAddr)
	galleryStore := media.NewS3Store(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// BOOKING USE CASES
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo, cfg)

	createReservationUC := ucBooking.NewCreateReservation(
		bookingRepo,
		auditDispatcher,
		cfg,
	)

	cancelReservationUC := ucBooking.NewCancelReservation(
		bookingRepo,
		auditDispatcher,
	)

	listReservationsByDateUC := ucBooking.NewListReservationsByDate(
		bookingRepo,
		cfg.Timezone,
	)

	listReservationsByMonthUC := ucBooking.NewListReservationsByMonth(
		bookingRepo,
		cfg.Timezone,
	)

	saveWeekUC := ucBooking.NewSaveWeekOverrides(
		bookingRepo,
		auditDispatcher,
		cfg,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	publicHandler := handlers.NewPublicHandler(
		db,
		cfg,
		availabilityCache,
		getAvailabilityUC,
		createReservationUC,
	)

	availabilityAdminHandler := handlers.NewAvailabilityAdminHandler(
		db,
		availabilityCache,
		saveWeekUC,
	)

	reservationHandler := handlers.NewReservationHandler(
		cfg,
		availabilityCache,
		listReservationsByDateUC,
		listReservationsByMonthUC,
		cancelReservationUC,
	)

	galleryHandler := handlers.NewGalleryHandler(db, galleryStore)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/reservations", publicHandler.CreateReservation)
			publicAPI.GET("/gallery", galleryHandler.List)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/availability", availabilityAdminHandler.GetOverrides)
			secured.PUT("/me/availability", availabilityAdminHandler.SaveWeek)

			// ------------------------------
			// RESERVATIONS
			// ------------------------------
			secured.GET("/me/reservations", reservationHandler.ListByDate)
			secured.GET("/me/reservations/month", reservationHandler.ListByMonth)
			secured.PATCH("/me/reservations/:id/cancel", reservationHandler.Cancel)

			// ------------------------------
			// GALLERY
			// ------------------------------
			secured.GET("/me/gallery", galleryHandler.List)
			secured.POST("/me/gallery", galleryHandler.Upload)
			secured.DELETE("/me/gallery/:id", galleryHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
