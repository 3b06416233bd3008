package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/httperr"
	"github.com/bookora/marketplace-api/internal/httpresp"
	"github.com/bookora/marketplace-api/internal/middleware"
	ucBooking "github.com/bookora/marketplace-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	slotsUC    *ucBooking.GetSlots
	requestUC  *ucBooking.RequestBooking
	approveUC  *ucBooking.ApproveAppointment
	rejectUC   *ucBooking.RejectAppointment
	cancelUC   *ucBooking.CancelAppointment
	captureUC  *ucBooking.CapturePayment
	completeUC *ucBooking.CompleteAppointment
	listUC     *ucBooking.ListBookings
}

func NewBookingHandler(
	slotsUC *ucBooking.GetSlots,
	requestUC *ucBooking.RequestBooking,
	approveUC *ucBooking.ApproveAppointment,
	rejectUC *ucBooking.RejectAppointment,
	cancelUC *ucBooking.CancelAppointment,
	captureUC *ucBooking.CapturePayment,
	completeUC *ucBooking.CompleteAppointment,
	listUC *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		slotsUC:    slotsUC,
		requestUC:  requestUC,
		approveUC:  approveUC,
		rejectUC:   rejectUC,
		cancelUC:   cancelUC,
		captureUC:  captureUC,
		completeUC: completeUC,
		listUC:     listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RequestBookingRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

// ======================================================
// SLOTS (public)
// ======================================================

func (h *BookingHandler) Slots(c *gin.Context) {
	sellerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid seller id.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), ucBooking.GetSlotsInput{
		SellerID:  uint(sellerID),
		ServiceID: uint(serviceID),
		Date:      date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *BookingHandler) Request(c *gin.Context) {
	buyerID := c.MustGet(middleware.ContextUserID).(uint)

	var req RequestBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ap, err := h.requestUC.Execute(c.Request.Context(), ucBooking.RequestBookingInput{
		BuyerID:   buyerID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		// A taken slot re-offers the current list instead of a bare
		// failure, so the buyer can pick again without a second round
		// trip.
		if errors.Is(err, domain.ErrSlotUnavailable) {
			h.respondSlotConflict(c, req.ServiceID, req.Date)
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *BookingHandler) respondSlotConflict(c *gin.Context, serviceID uint, date string) {
	type conflictBody struct {
		Code  string            `json:"error_code"`
		Slots []domain.TimeSlot `json:"slots"`
	}

	body := conflictBody{Code: "slot_unavailable", Slots: []domain.TimeSlot{}}

	// Best effort: the conflict answer is still correct without the list.
	if svc, err := h.slotsUC.ServiceSeller(c.Request.Context(), serviceID); err == nil {
		if slots, err := h.slotsUC.Execute(c.Request.Context(), ucBooking.GetSlotsInput{
			SellerID:  svc,
			ServiceID: serviceID,
			Date:      date,
		}); err == nil {
			body.Slots = slots
		}
	}

	c.JSON(http.StatusConflict, body)
}

func (h *BookingHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	aps, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *BookingHandler) Approve(c *gin.Context) {
	h.transition(c, func(userID, apID uint) (any, error) {
		return h.approveUC.Execute(c.Request.Context(), userID, apID)
	})
}

func (h *BookingHandler) Reject(c *gin.Context) {
	h.transition(c, func(userID, apID uint) (any, error) {
		return h.rejectUC.Execute(c.Request.Context(), userID, apID)
	})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, func(userID, apID uint) (any, error) {
		return h.cancelUC.Execute(c.Request.Context(), userID, apID)
	})
}

func (h *BookingHandler) Pay(c *gin.Context) {
	h.transition(c, func(userID, apID uint) (any, error) {
		return h.captureUC.Execute(c.Request.Context(), userID, apID)
	})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, func(userID, apID uint) (any, error) {
		return h.completeUC.Execute(c.Request.Context(), userID, apID)
	})
}

func (h *BookingHandler) transition(c *gin.Context, run func(userID, apID uint) (any, error)) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	apID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	result, err := run(userID, uint(apID))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, result)
}
