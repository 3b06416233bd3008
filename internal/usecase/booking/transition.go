package booking

import (
	"context"
	"time"

	"github.com/bookora/marketplace-api/internal/audit"
	"github.com/bookora/marketplace-api/internal/clock"
	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/models"
	"github.com/bookora/marketplace-api/internal/observability/metrics"
)

// transitioner is shared plumbing for the lifecycle usecases: load the row,
// resolve the actor, consult the transition table, then hand the guarded
// write to CompareAndSwapStatus. Validation always precedes the write; a
// lost race surfaces as concurrent_modification with nothing applied.
type transitioner struct {
	base
	clock clock.Clock
	cache SlotCache
	audit *audit.Dispatcher
}

func newTransitioner(
	repo domain.Repository,
	clk clock.Clock,
	cache SlotCache,
	auditD *audit.Dispatcher,
	timeout time.Duration,
) transitioner {
	return transitioner{
		base:  newBase(repo, timeout),
		clock: clk,
		cache: cache,
		audit: auditD,
	}
}

func (t transitioner) apply(
	ctx context.Context,
	ap *models.Appointment,
	actor domain.Actor,
	next domain.Status,
	fields map[string]any,
) error {

	from := domain.Status(ap.Status)
	if err := domain.CanTransition(from, next, actor); err != nil {
		return err
	}

	if err := t.repo.CompareAndSwapStatus(ctx, ap.ID, from, next, fields); err != nil {
		return err
	}

	metrics.Transitions.WithLabelValues(string(next)).Inc()
	return nil
}

func (t transitioner) auditEvent(actorID uint, action string, apID uint) {
	t.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &apID,
	})
}
