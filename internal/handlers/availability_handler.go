package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bookora/marketplace-api/internal/httperr"
	"github.com/bookora/marketplace-api/internal/httpresp"
	"github.com/bookora/marketplace-api/internal/middleware"
	ucBooking "github.com/bookora/marketplace-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	setUC *ucBooking.SetAvailability
	getUC *ucBooking.GetAvailability
}

func NewAvailabilityHandler(
	setUC *ucBooking.SetAvailability,
	getUC *ucBooking.GetAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		setUC: setUC,
		getUC: getUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SetAvailabilityRequest struct {
	Windows []ucBooking.WindowInput `json:"windows" binding:"required"`
}

// ======================================================
// ROUTES
// ======================================================

// Set replaces the caller's full weekly schedule in one shot.
func (h *AvailabilityHandler) Set(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextUserID).(uint)

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid availability payload.")
		return
	}

	windows, err := h.setUC.Execute(c.Request.Context(), ucBooking.SetAvailabilityInput{
		SellerID: sellerID,
		Windows:  req.Windows,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, windows)
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextUserID).(uint)

	windows, err := h.getUC.Execute(c.Request.Context(), sellerID)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, windows)
}
