package booking

import (
	"context"
	"time"

	"github.com/bookora/marketplace-api/internal/audit"
	"github.com/bookora/marketplace-api/internal/clock"
	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/models"
)

type RejectAppointment struct {
	transitioner
}

func NewRejectAppointment(
	repo domain.Repository,
	clk clock.Clock,
	cache SlotCache,
	auditD *audit.Dispatcher,
	timeout time.Duration,
) *RejectAppointment {
	return &RejectAppointment{
		transitioner: newTransitioner(repo, clk, cache, auditD, timeout),
	}
}

func (uc *RejectAppointment) Execute(
	ctx context.Context,
	sellerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap.SellerID != sellerID {
		return nil, domain.ErrUnauthorized
	}

	now := uc.clock.Now()
	err = uc.apply(ctx, ap, domain.ActorSeller, domain.StatusRejected, map[string]any{
		"rejected_at": &now,
	})
	if err != nil {
		return nil, err
	}

	// A rejected request releases its hold.
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, ap.SellerID, ap.Date)
	}

	uc.auditEvent(sellerID, "appointment_rejected", ap.ID)
	return uc.repo.GetAppointment(ctx, ap.ID)
}
