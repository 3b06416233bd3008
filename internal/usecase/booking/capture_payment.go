package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bookora/marketplace-api/internal/audit"
	"github.com/bookora/marketplace-api/internal/clock"
	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/logging"
	"github.com/bookora/marketplace-api/internal/models"
	"github.com/bookora/marketplace-api/internal/observability/metrics"
	"github.com/bookora/marketplace-api/internal/payments"
)

// CapturePayment drives approved -> paid -> confirmed. Settlement is
// computed exactly once and written in the same compare-and-swap as the
// paid status; a failed capture leaves the appointment approved and
// payable again.
type CapturePayment struct {
	transitioner
	gateway payments.Gateway
}

func NewCapturePayment(
	repo domain.Repository,
	clk clock.Clock,
	cache SlotCache,
	auditD *audit.Dispatcher,
	gateway payments.Gateway,
	timeout time.Duration,
) *CapturePayment {
	return &CapturePayment{
		transitioner: newTransitioner(repo, clk, cache, auditD, timeout),
		gateway:      gateway,
	}
}

func (uc *CapturePayment) Execute(
	ctx context.Context,
	buyerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap.BuyerID != buyerID {
		return nil, domain.ErrUnauthorized
	}

	// Check legality before touching the gateway so a rejected or already
	// paid appointment never reaches capture.
	if err := domain.CanTransition(domain.Status(ap.Status), domain.StatusPaid, domain.ActorBuyer); err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, ap.ServiceID)
	if err != nil {
		return nil, err
	}

	settlement, err := domain.Settle(ap, svc)
	if err != nil {
		return nil, err
	}

	ref, err := uc.gateway.Capture(ctx, settlement.AmountCents)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	err = uc.apply(ctx, ap, domain.ActorBuyer, domain.StatusPaid, map[string]any{
		"amount_cents":          settlement.AmountCents,
		"platform_fee_cents":    settlement.PlatformFeeCents,
		"seller_earnings_cents": settlement.SellerEarningsCents,
		"payment_ref":           ref,
		"paid_at":               &now,
	})
	if err != nil {
		return nil, err
	}

	metrics.SettledAmountCents.Add(float64(settlement.AmountCents))
	uc.auditEvent(buyerID, "payment_captured", ap.ID)

	// Confirmation follows capture immediately, as the system actor. A
	// failure here leaves an auditable paid row; earnings recognition
	// waits for confirmed either way.
	if err := uc.repo.CompareAndSwapStatus(ctx, ap.ID, domain.StatusPaid, domain.StatusConfirmed, nil); err != nil {
		logging.Log.Error("auto-confirm after capture failed",
			zap.Uint("appointment_id", ap.ID),
			zap.Error(err),
		)
	} else {
		metrics.Transitions.WithLabelValues(string(domain.StatusConfirmed)).Inc()
	}

	return uc.repo.GetAppointment(ctx, ap.ID)
}
