package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookora/marketplace-api/internal/clock"
	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/models"
)

// pendingAppointment seeds a pending row directly, bypassing RequestBooking.
func pendingAppointment(t *testing.T, repo *memRepo, buyer uint, start string) uint {
	t.Helper()

	ap := &models.Appointment{
		BuyerID:   buyer,
		SellerID:  sellerID,
		ServiceID: svcID,
		Date:      bookDate,
		StartTime: start,
		Status:    string(domain.StatusPending),
	}
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))
	return ap.ID
}

func TestApproveSetsStatusAndTimestamp(t *testing.T) {
	repo, clk := fixture(t)
	id := pendingAppointment(t, repo, buyerID, bookTime)

	uc := NewApproveAppointment(repo, clk, nil, nil, time.Second)
	ap, err := uc.Execute(context.Background(), sellerID, id)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusApproved), ap.Status)
	require.NotNil(t, ap.ApprovedAt)
	assert.Equal(t, frozenNow, *ap.ApprovedAt)
}

func TestApproveByWrongSeller(t *testing.T) {
	repo, clk := fixture(t)
	id := pendingAppointment(t, repo, buyerID, bookTime)

	uc := NewApproveAppointment(repo, clk, nil, nil, time.Second)
	_, err := uc.Execute(context.Background(), otherID, id)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestApproveRefusedWhenSlotAlreadyClaimed(t *testing.T) {
	repo, clk := fixture(t)

	winner := pendingAppointment(t, repo, buyerID, bookTime)
	loser := pendingAppointment(t, repo, otherID, bookTime)

	uc := NewApproveAppointment(repo, clk, nil, nil, time.Second)
	_, err := uc.Execute(context.Background(), sellerID, winner)
	require.NoError(t, err)

	// The second pending request targets the same slot; approving it would
	// double-book, so the seller gets a conflict instead.
	_, err = uc.Execute(context.Background(), sellerID, loser)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

	ap, err := repo.GetAppointment(context.Background(), loser)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
}

func TestApproveLostRace(t *testing.T) {
	repo, clk := fixture(t)
	id := pendingAppointment(t, repo, buyerID, bookTime)

	// The buyer cancels between the seller's read and the guarded write.
	repo.beforeCAS = func() {
		now := clk.Now()
		repo.appointments[id].Status = string(domain.StatusCancelled)
		repo.appointments[id].CancelledAt = &now
	}

	uc := NewApproveAppointment(repo, clk, nil, nil, time.Second)
	_, err := uc.Execute(context.Background(), sellerID, id)
	assert.ErrorIs(t, err, domain.ErrConcurrentModification)

	ap, err := repo.GetAppointment(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	assert.Nil(t, ap.ApprovedAt)
}

func TestApproveNonPending(t *testing.T) {
	repo, clk := fixture(t)
	id := pendingAppointment(t, repo, buyerID, bookTime)
	repo.appointments[id].Status = string(domain.StatusRejected)

	uc := NewApproveAppointment(repo, clk, nil, nil, time.Second)
	_, err := uc.Execute(context.Background(), sellerID, id)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRejectReleasesWithoutClaimCheck(t *testing.T) {
	repo, clk := fixture(t)

	// Two pending requests on one slot: rejecting either is always legal.
	first := pendingAppointment(t, repo, buyerID, bookTime)
	pendingAppointment(t, repo, otherID, bookTime)

	uc := NewRejectAppointment(repo, clk, nil, nil, time.Second)
	ap, err := uc.Execute(context.Background(), sellerID, first)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusRejected), ap.Status)
	require.NotNil(t, ap.RejectedAt)
	assert.Equal(t, frozenNow, *ap.RejectedAt)
}

func TestRejectByWrongSeller(t *testing.T) {
	repo, clk := fixture(t)
	id := pendingAppointment(t, repo, buyerID, bookTime)

	uc := NewRejectAppointment(repo, clk, nil, nil, time.Second)
	_, err := uc.Execute(context.Background(), otherID, id)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func approvedAppointment(t *testing.T, repo *memRepo, clk clock.Clock, buyer uint) uint {
	t.Helper()

	id := pendingAppointment(t, repo, buyer, bookTime)
	uc := NewApproveAppointment(repo, clk, nil, nil, time.Second)
	_, err := uc.Execute(context.Background(), sellerID, id)
	require.NoError(t, err)
	return id
}
