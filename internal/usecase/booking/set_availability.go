package booking

import (
	"context"
	"time"

	"github.com/bookora/marketplace-api/internal/audit"
	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type WindowInput struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
}

type SetAvailabilityInput struct {
	SellerID uint
	Windows  []WindowInput
}

// ======================================================
// USE CASE
// ======================================================

// SetAvailability replaces a seller's full weekly schedule atomically.
// Partial weekly updates are not supported; the whole week is validated
// before anything is written.
type SetAvailability struct {
	base
	audit *audit.Dispatcher
}

func NewSetAvailability(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	timeout time.Duration,
) *SetAvailability {
	return &SetAvailability{
		base:  newBase(repo, timeout),
		audit: auditD,
	}
}

func (uc *SetAvailability) Execute(
	ctx context.Context,
	in SetAvailabilityInput,
) ([]models.AvailabilityWindow, error) {

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	seller, err := uc.repo.GetUser(ctx, in.SellerID)
	if err != nil {
		return nil, err
	}
	if seller.Role != models.RoleSeller {
		return nil, domain.ErrUnauthorized
	}

	windows := make([]models.AvailabilityWindow, 0, len(in.Windows))
	for _, w := range in.Windows {
		windows = append(windows, models.AvailabilityWindow{
			SellerID:  in.SellerID,
			Weekday:   w.Weekday,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			Active:    w.Active,
		})
	}

	if err := domain.ValidateWindows(windows); err != nil {
		return nil, err
	}

	if err := uc.repo.ReplaceAvailability(ctx, in.SellerID, windows); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID: &in.SellerID,
		Action:  "availability_replaced",
		Entity:  "availability",
	})

	return uc.repo.LoadAvailability(ctx, in.SellerID)
}
