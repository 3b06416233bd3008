package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookora/marketplace-api/internal/clock"
	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/httperr"
	"github.com/bookora/marketplace-api/internal/models"
)

const (
	sellerID = uint(1)
	buyerID  = uint(2)
	otherID  = uint(3)
	svcID    = uint(10)

	// 2026-09-07 is a Monday.
	bookDate = "2026-09-07"
	bookTime = "10:00"
)

var frozenNow = time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

func fixture(t *testing.T) (*memRepo, clock.Frozen) {
	t.Helper()

	repo := newMemRepo()
	repo.addUser(sellerID, models.RoleSeller)
	repo.addUser(buyerID, models.RoleBuyer)
	repo.addUser(otherID, models.RoleBuyer)
	repo.addService(svcID, sellerID, 10000, 60)
	repo.setWeek(sellerID, models.AvailabilityWindow{
		SellerID:  sellerID,
		Weekday:   int(time.Monday),
		StartTime: "09:00",
		EndTime:   "17:00",
		Active:    true,
	})

	return repo, clock.Frozen{T: frozenNow}
}

func requestBooking(t *testing.T, repo *memRepo, clk clock.Clock, buyer uint) (*models.Appointment, error) {
	t.Helper()

	uc := NewRequestBooking(repo, clk, nil, nil, time.Second)
	return uc.Execute(context.Background(), RequestBookingInput{
		BuyerID:   buyer,
		ServiceID: svcID,
		Date:      bookDate,
		Time:      bookTime,
	})
}

func TestRequestBookingCreatesPendingHold(t *testing.T) {
	repo, clk := fixture(t)

	ap, err := requestBooking(t, repo, clk, buyerID)
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, buyerID, ap.BuyerID)
	assert.Equal(t, sellerID, ap.SellerID)
	assert.Equal(t, bookDate, ap.Date)
	assert.Equal(t, bookTime, ap.StartTime)
	assert.Nil(t, ap.AmountCents)
}

func TestRequestBookingPendingHoldBlocksSecondBuyer(t *testing.T) {
	repo, clk := fixture(t)

	_, err := requestBooking(t, repo, clk, buyerID)
	require.NoError(t, err)

	// Same seller, date, and start time while the first request is still
	// pending. The hold starts at request, not at approval.
	_, err = requestBooking(t, repo, clk, otherID)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestRequestBookingReleasedSlotReopens(t *testing.T) {
	repo, clk := fixture(t)

	first, err := requestBooking(t, repo, clk, buyerID)
	require.NoError(t, err)

	rejectedAt := clk.Now()
	repo.appointments[first.ID].Status = string(domain.StatusRejected)
	repo.appointments[first.ID].RejectedAt = &rejectedAt

	second, err := requestBooking(t, repo, clk, otherID)
	require.NoError(t, err)
	assert.Equal(t, bookTime, second.StartTime)
}

func TestRequestBookingSellerRoleRefused(t *testing.T) {
	repo, clk := fixture(t)

	_, err := requestBooking(t, repo, clk, sellerID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRequestBookingPastDate(t *testing.T) {
	repo, clk := fixture(t)

	uc := NewRequestBooking(repo, clk, nil, nil, time.Second)
	_, err := uc.Execute(context.Background(), RequestBookingInput{
		BuyerID:   buyerID,
		ServiceID: svcID,
		Date:      "2026-08-31",
		Time:      bookTime,
	})
	assert.ErrorIs(t, err, domain.ErrPastDate)
}

func TestRequestBookingMalformedInput(t *testing.T) {
	repo, clk := fixture(t)
	uc := NewRequestBooking(repo, clk, nil, nil, time.Second)

	_, err := uc.Execute(context.Background(), RequestBookingInput{
		BuyerID:   buyerID,
		ServiceID: svcID,
		Date:      "07/09/2026",
		Time:      bookTime,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	_, err = uc.Execute(context.Background(), RequestBookingInput{
		BuyerID:   buyerID,
		ServiceID: svcID,
		Date:      bookDate,
		Time:      "10am",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestRequestBookingOffGridTime(t *testing.T) {
	repo, clk := fixture(t)

	uc := NewRequestBooking(repo, clk, nil, nil, time.Second)
	_, err := uc.Execute(context.Background(), RequestBookingInput{
		BuyerID:   buyerID,
		ServiceID: svcID,
		Date:      bookDate,
		Time:      "10:15",
	})
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

func TestRequestBookingInactiveService(t *testing.T) {
	repo, clk := fixture(t)
	repo.services[svcID].Active = false

	_, err := requestBooking(t, repo, clk, buyerID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
