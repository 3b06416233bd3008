package booking

import (
	"context"
	"time"

	"github.com/bookora/marketplace-api/internal/audit"
	"github.com/bookora/marketplace-api/internal/clock"
	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/models"
)

// ApproveAppointment moves pending -> approved, refusing when another
// appointment on the same seller/date/time already won approval or payment.
type ApproveAppointment struct {
	transitioner
}

func NewApproveAppointment(
	repo domain.Repository,
	clk clock.Clock,
	cache SlotCache,
	auditD *audit.Dispatcher,
	timeout time.Duration,
) *ApproveAppointment {
	return &ApproveAppointment{
		transitioner: newTransitioner(repo, clk, cache, auditD, timeout),
	}
}

func (uc *ApproveAppointment) Execute(
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

	claims, err := uc.repo.CountSlotClaims(
		ctx,
		ap.SellerID,
		ap.Date,
		ap.StartTime,
		domain.ApprovalBlocking(),
		ap.ID,
	)
	if err != nil {
		return nil, err
	}
	if claims > 0 {
		return nil, domain.ErrSlotUnavailable
	}

	now := uc.clock.Now()
	err = uc.apply(ctx, ap, domain.ActorSeller, domain.StatusApproved, map[string]any{
		"approved_at": &now,
	})
	if err != nil {
		return nil, err
	}

	uc.auditEvent(sellerID, "appointment_approved", ap.ID)
	return uc.repo.GetAppointment(ctx, ap.ID)
}
