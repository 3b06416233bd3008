package booking

import (
	"context"
	"time"

	"github.com/bookora/marketplace-api/internal/audit"
	"github.com/bookora/marketplace-api/internal/clock"
	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/models"
)

// CompleteAppointment closes out a confirmed appointment once its slot has
// elapsed.
type CompleteAppointment struct {
	transitioner
}

func NewCompleteAppointment(
	repo domain.Repository,
	clk clock.Clock,
	cache SlotCache,
	auditD *audit.Dispatcher,
	timeout time.Duration,
) *CompleteAppointment {
	return &CompleteAppointment{
		transitioner: newTransitioner(repo, clk, cache, auditD, timeout),
	}
}

func (uc *CompleteAppointment) Execute(
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

	if !slotElapsed(ap, uc.clock.Now()) {
		return nil, domain.ErrInvalidTransition
	}

	now := uc.clock.Now()
	err = uc.apply(ctx, ap, domain.ActorSeller, domain.StatusCompleted, map[string]any{
		"completed_at": &now,
	})
	if err != nil {
		return nil, err
	}

	uc.auditEvent(sellerID, "appointment_completed", ap.ID)
	return uc.repo.GetAppointment(ctx, ap.ID)
}

// slotElapsed reports whether the appointment's slot end lies in the past.
func slotElapsed(ap *models.Appointment, now time.Time) bool {
	date, err := time.Parse(domain.DateLayout, ap.Date)
	if err != nil {
		return false
	}
	endMin, ok := domain.ParseMinutes(domain.SlotEnd(ap.StartTime, ap.Service.DurationMin))
	if !ok {
		return false
	}
	end := time.Date(
		date.Year(), date.Month(), date.Day(),
		endMin/60, endMin%60, 0, 0,
		now.Location(),
	)
	return end.Before(now)
}
