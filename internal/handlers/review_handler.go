package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookora/marketplace-api/internal/httperr"
	"github.com/bookora/marketplace-api/internal/middleware"
	ucBooking "github.com/bookora/marketplace-api/internal/usecase/booking"
)

type ReviewHandler struct {
	submitUC *ucBooking.SubmitReview
}

func NewReviewHandler(submitUC *ucBooking.SubmitReview) *ReviewHandler {
	return &ReviewHandler{submitUC: submitUC}
}

type SubmitReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	apID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid review payload.")
		return
	}

	rv, err := h.submitUC.Execute(c.Request.Context(), ucBooking.SubmitReviewInput{
		AuthorID:      userID,
		AppointmentID: uint(apID),
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rv)
}
