package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookora/marketplace-api/internal/httperr"
	"github.com/bookora/marketplace-api/internal/httpresp"
	"github.com/bookora/marketplace-api/internal/middleware"
	"github.com/bookora/marketplace-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	DurationMin int    `json:"duration_min" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"price_cents"`
	DurationMin *int    `json:"duration_min"`
	Active      *bool   `json:"active"`
}

// ======================================================
// SELLER (private)
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextUserID).(uint)

	var svcs []models.Service
	if err := h.db.
		Where("seller_id = ?", sellerID).
		Order("id ASC").
		Find(&svcs).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not list services.")
		return
	}

	httpresp.List(c, svcs)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	svc := models.Service{
		SellerID:    sellerID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		DurationMin: req.DurationMin,
		Active:      true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "create_failed", "Could not create service.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// Update edits price/metadata. Settled appointments are untouched: the
// settlement engine copied the price at capture.
func (h *ServiceHandler) Update(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var svc models.Service
	if err := h.db.
		Where("id = ? AND seller_id = ?", id, sellerID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.PriceCents != nil {
		if *req.PriceCents <= 0 {
			httperr.BadRequest(c, "invalid_price", "Price must be positive.")
			return
		}
		svc.PriceCents = *req.PriceCents
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be positive.")
			return
		}
		svc.DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "update_failed", "Could not update service.")
		return
	}

	httpresp.OK(c, svc)
}

// ======================================================
// PUBLIC
// ======================================================

func (h *ServiceHandler) ListForSeller(c *gin.Context) {
	sellerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid seller id.")
		return
	}

	var svcs []models.Service
	if err := h.db.
		Where("seller_id = ? AND active = ?", sellerID, true).
		Order("id ASC").
		Find(&svcs).Error; err != nil {
		httperr.Internal(c, "list_failed", "Could not list services.")
		return
	}

	httpresp.List(c, svcs)
}
