package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/bookora/marketplace-api/internal/httpresp"
	"github.com/bookora/marketplace-api/internal/middleware"
	ucEarnings "github.com/bookora/marketplace-api/internal/usecase/earnings"
)

type EarningsHandler struct {
	sellerUC   *ucEarnings.SellerEarnings
	platformUC *ucEarnings.PlatformTotals
}

func NewEarningsHandler(
	sellerUC *ucEarnings.SellerEarnings,
	platformUC *ucEarnings.PlatformTotals,
) *EarningsHandler {
	return &EarningsHandler{
		sellerUC:   sellerUC,
		platformUC: platformUC,
	}
}

func (h *EarningsHandler) Seller(c *gin.Context) {
	sellerID := c.MustGet(middleware.ContextUserID).(uint)

	report, err := h.sellerUC.Execute(c.Request.Context(), sellerID)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, report)
}

func (h *EarningsHandler) Platform(c *gin.Context) {
	report, err := h.platformUC.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, report)
}
