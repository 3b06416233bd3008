package booking

import (
	"context"
	"time"

	"github.com/bookora/marketplace-api/internal/audit"
	"github.com/bookora/marketplace-api/internal/clock"
	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/models"
)

// CancelAppointment lets either party abandon a not-yet-paid appointment.
// Cancellation is a terminal status, not a deletion; the row stays in the
// ledger.
type CancelAppointment struct {
	transitioner
}

func NewCancelAppointment(
	repo domain.Repository,
	clk clock.Clock,
	cache SlotCache,
	auditD *audit.Dispatcher,
	timeout time.Duration,
) *CancelAppointment {
	return &CancelAppointment{
		transitioner: newTransitioner(repo, clk, cache, auditD, timeout),
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	actor, err := actorOf(userID, ap.BuyerID, ap.SellerID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	err = uc.apply(ctx, ap, actor, domain.StatusCancelled, map[string]any{
		"cancelled_at": &now,
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, ap.SellerID, ap.Date)
	}

	uc.auditEvent(userID, "appointment_cancelled", ap.ID)
	return uc.repo.GetAppointment(ctx, ap.ID)
}
