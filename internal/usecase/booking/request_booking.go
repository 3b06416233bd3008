package booking

import (
	"context"
	"time"

	"github.com/bookora/marketplace-api/internal/audit"
	"github.com/bookora/marketplace-api/internal/clock"
	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/httperr"
	"github.com/bookora/marketplace-api/internal/models"
	"github.com/bookora/marketplace-api/internal/observability/metrics"
)

// ======================================================
// INPUT
// ======================================================

type RequestBookingInput struct {
	BuyerID   uint
	ServiceID uint
	Date      string
	Time      string
}

// ======================================================
// USE CASE
// ======================================================

// RequestBooking creates a pending appointment on a free slot. The new row
// immediately holds the slot, so a second buyer asking for the identical
// start time is refused before any seller involvement.
type RequestBooking struct {
	base
	clock clock.Clock
	cache SlotCache
	audit *audit.Dispatcher
}

func NewRequestBooking(
	repo domain.Repository,
	clk clock.Clock,
	cache SlotCache,
	auditD *audit.Dispatcher,
	timeout time.Duration,
) *RequestBooking {
	return &RequestBooking{
		base:  newBase(repo, timeout),
		clock: clk,
		cache: cache,
		audit: auditD,
	}
}

func (uc *RequestBooking) Execute(
	ctx context.Context,
	in RequestBookingInput,
) (*models.Appointment, error) {

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	buyer, err := uc.repo.GetUser(ctx, in.BuyerID)
	if err != nil {
		return nil, err
	}
	if buyer.Role != models.RoleBuyer {
		return nil, domain.ErrUnauthorized
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, domain.ErrNotFound
	}

	date, err := time.Parse(domain.DateLayout, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, ok := domain.ParseMinutes(in.Time); !ok {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	windows, err := uc.repo.LoadAvailability(ctx, svc.SellerID)
	if err != nil {
		return nil, err
	}

	held, err := uc.repo.ListAppointmentsForDay(ctx, svc.SellerID, in.Date)
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

	open := false
	for _, s := range slots {
		if s.Start == in.Time {
			open = true
			break
		}
	}
	if !open {
		return nil, domain.ErrSlotUnavailable
	}

	ap := &models.Appointment{
		BuyerID:   in.BuyerID,
		SellerID:  svc.SellerID,
		ServiceID: svc.ID,
		Date:      in.Date,
		StartTime: in.Time,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	metrics.BookingsRequested.Inc()
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, svc.SellerID, in.Date)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.BuyerID,
		Action:   "booking_requested",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
