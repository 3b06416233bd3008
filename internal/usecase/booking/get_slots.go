package booking

import (
	"context"
	"time"

	"github.com/bookora/marketplace-api/internal/clock"
	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type GetSlotsInput struct {
	SellerID  uint
	ServiceID uint
	Date      string
}

// ======================================================
// USE CASE
// ======================================================

type GetSlots struct {
	base
	clock clock.Clock
	cache SlotCache
}

func NewGetSlots(
	repo domain.Repository,
	clk clock.Clock,
	cache SlotCache,
	timeout time.Duration,
) *GetSlots {
	return &GetSlots{
		base:  newBase(repo, timeout),
		clock: clk,
		cache: cache,
	}
}

func (uc *GetSlots) Execute(
	ctx context.Context,
	in GetSlotsInput,
) ([]domain.TimeSlot, error) {

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	date, err := time.Parse(domain.DateLayout, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc.SellerID != in.SellerID || !svc.Active {
		return nil, domain.ErrNotFound
	}

	if uc.cache != nil {
		if slots, ok := uc.cache.Get(ctx, in.SellerID, in.Date, in.ServiceID); ok {
			return slots, nil
		}
	}

	windows, err := uc.repo.LoadAvailability(ctx, in.SellerID)
	if err != nil {
		return nil, err
	}

	held, err := uc.repo.ListAppointmentsForDay(ctx, in.SellerID, in.Date)
	if err != nil {
		return nil, err
	}

	slots, err := domain.ComputeSlots(domain.SlotInput{
		Date:        date,
		Now:         uc.clock.Now(),
		Windows:     windows,
		Held:        held,
		DurationMin: svc.DurationMin,
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, in.SellerID, in.Date, in.ServiceID, slots)
	}

	return slots, nil
}

// ServiceSeller resolves which seller owns a service, for callers that
// only hold the service id.
func (uc *GetSlots) ServiceSeller(
	ctx context.Context,
	serviceID uint,
) (uint, error) {

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	svc, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return 0, err
	}
	return svc.SellerID, nil
}
