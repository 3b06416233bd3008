package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/bookora/marketplace-api/internal/audit"
	"github.com/bookora/marketplace-api/internal/clock"
	"github.com/bookora/marketplace-api/internal/config"
	"github.com/bookora/marketplace-api/internal/handlers"
	infraCache "github.com/bookora/marketplace-api/internal/infra/cache"
	infraRepo "github.com/bookora/marketplace-api/internal/infra/repository"
	"github.com/bookora/marketplace-api/internal/middleware"
	"github.com/bookora/marketplace-api/internal/models"
	"github.com/bookora/marketplace-api/internal/payments"
	ucBooking "github.com/bookora/marketplace-api/internal/usecase/booking"
	ucEarnings "github.com/bookora/marketplace-api/internal/usecase/earnings"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	clk := clock.NewReal(cfg.Timezone)
	gateway := payments.NewSimulatedGateway()

	var slotCache ucBooking.SlotCache
	if c := infraCache.NewSlotCache(cfg.RedisAddr); c != nil {
		slotCache = c
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	setAvailabilityUC := ucBooking.NewSetAvailability(bookingRepo, auditDispatcher, cfg.OpTimeout)
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo, cfg.OpTimeout)

	getSlotsUC := ucBooking.NewGetSlots(bookingRepo, clk, slotCache, cfg.OpTimeout)
	requestBookingUC := ucBooking.NewRequestBooking(bookingRepo, clk, slotCache, auditDispatcher, cfg.OpTimeout)
	approveUC := ucBooking.NewApproveAppointment(bookingRepo, clk, slotCache, auditDispatcher, cfg.OpTimeout)
	rejectUC := ucBooking.NewRejectAppointment(bookingRepo, clk, slotCache, auditDispatcher, cfg.OpTimeout)
	cancelUC := ucBooking.NewCancelAppointment(bookingRepo, clk, slotCache, auditDispatcher, cfg.OpTimeout)
	captureUC := ucBooking.NewCapturePayment(bookingRepo, clk, slotCache, auditDispatcher, gateway, cfg.OpTimeout)
	completeUC := ucBooking.NewCompleteAppointment(bookingRepo, clk, slotCache, auditDispatcher, cfg.OpTimeout)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo, cfg.OpTimeout)
	submitReviewUC := ucBooking.NewSubmitReview(bookingRepo, auditDispatcher, cfg.OpTimeout)

	sellerEarningsUC := ucEarnings.NewSellerEarnings(bookingRepo, cfg.OpTimeout)
	platformTotalsUC := ucEarnings.NewPlatformTotals(bookingRepo, cfg.OpTimeout)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	serviceHandler := handlers.NewServiceHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(setAvailabilityUC, getAvailabilityUC)
	bookingHandler := handlers.NewBookingHandler(
		getSlotsUC,
		requestBookingUC,
		approveUC,
		rejectUC,
		cancelUC,
		captureUC,
		completeUC,
		listBookingsUC,
	)
	earningsHandler := handlers.NewEarningsHandler(sellerEarningsUC, platformTotalsUC)
	reviewHandler := handlers.NewReviewHandler(submitReviewUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/sellers/:id/services", serviceHandler.ListForSeller)
			publicAPI.GET("/sellers/:id/slots", bookingHandler.Slots)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			seller := secured.Group("/me")
			seller.Use(middleware.RequireRole(models.RoleSeller))
			{
				seller.GET("/services", serviceHandler.List)
				seller.POST("/services", serviceHandler.Create)
				seller.PATCH("/services/:id", serviceHandler.Update)

				seller.GET("/availability", availabilityHandler.Get)
				seller.PUT("/availability", availabilityHandler.Set)

				seller.GET("/earnings", earningsHandler.Seller)
			}

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Request)
			secured.GET("/bookings", bookingHandler.List)
			secured.PATCH("/bookings/:id/approve", bookingHandler.Approve)
			secured.PATCH("/bookings/:id/reject", bookingHandler.Reject)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.POST("/bookings/:id/pay", bookingHandler.Pay)
			secured.PATCH("/bookings/:id/complete", bookingHandler.Complete)
			secured.POST("/bookings/:id/review", reviewHandler.Submit)

			// ------------------------------
			// PLATFORM (admin)
			// ------------------------------
			platform := secured.Group("/platform")
			platform.Use(middleware.RequireRole(models.RoleAdmin))
			{
				platform.GET("/totals", earningsHandler.Platform)
			}
		}
	}
}
