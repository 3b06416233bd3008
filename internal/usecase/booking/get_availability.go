package booking

import (
	"context"
	"time"

	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/models"
)

type GetAvailability struct {
	base
}

func NewGetAvailability(repo domain.Repository, timeout time.Duration) *GetAvailability {
	return &GetAvailability{base: newBase(repo, timeout)}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	sellerID uint,
) ([]models.AvailabilityWindow, error) {

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	return uc.repo.LoadAvailability(ctx, sellerID)
}
