package booking

import (
	"context"
	"time"

	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/models"
)

// ListBookings returns the caller's side of the ledger: a buyer sees what
// they booked, a seller sees what was booked with them.
type ListBookings struct {
	base
}

func NewListBookings(repo domain.Repository, timeout time.Duration) *ListBookings {
	return &ListBookings{base: newBase(repo, timeout)}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	user, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return uc.repo.ListAppointmentsForUser(ctx, user.ID, user.Role)
}
