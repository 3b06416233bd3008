package booking

import (
	"context"
	"time"

	domain "github.com/bookora/marketplace-api/internal/domain/booking"
)

// SlotCache is the optional read-through projection consulted by the slot
// calculator. A nil cache is valid and means "always recompute".
type SlotCache interface {
	Get(ctx context.Context, sellerID uint, date string, serviceID uint) ([]domain.TimeSlot, bool)
	Set(ctx context.Context, sellerID uint, date string, serviceID uint, slots []domain.TimeSlot)
	Invalidate(ctx context.Context, sellerID uint, date string)
}

// base carries what every operation needs: the persistence port and the
// bound on how long any collaborator call may take.
type base struct {
	repo    domain.Repository
	timeout time.Duration
}

func newBase(repo domain.Repository, timeout time.Duration) base {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return base{repo: repo, timeout: timeout}
}

func (b base) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, b.timeout)
}

// actorOf resolves which party of the appointment the user is. Non-parties
// get nothing, not even a not-found hint.
func actorOf(userID uint, buyerID uint, sellerID uint) (domain.Actor, error) {
	switch userID {
	case buyerID:
		return domain.ActorBuyer, nil
	case sellerID:
		return domain.ActorSeller, nil
	default:
		return "", domain.ErrUnauthorized
	}
}
