package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bookora/marketplace-api/internal/httperr"
	"github.com/bookora/marketplace-api/internal/logging"
)

// respondError maps the business taxonomy onto HTTP statuses. Anything
// outside the taxonomy is an infrastructure fault: logged, surfaced as a
// generic 500, never silently continued.
func respondError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		httperr.Write(c, statusFor(be.Code), be.Code, be.Code)
		return
	}

	logging.Log.Error("unexpected error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	httperr.Internal(c, "internal_error", "Unexpected error.")
}

func statusFor(code string) int {
	switch code {
	case "not_found":
		return http.StatusNotFound
	case "unauthorized":
		return http.StatusForbidden
	case "slot_unavailable",
		"invalid_transition",
		"already_settled",
		"concurrent_modification",
		"already_reviewed":
		return http.StatusConflict
	case "timeout":
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadRequest
	}
}
