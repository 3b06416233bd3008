package booking

import (
	"context"
	"time"

	"github.com/bookora/marketplace-api/internal/audit"
	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/httperr"
	"github.com/bookora/marketplace-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SubmitReviewInput struct {
	AuthorID      uint
	AppointmentID uint
	Rating        int
	Comment       string
}

// ======================================================
// USE CASE
// ======================================================

// SubmitReview lets a party of a completed appointment rate the other
// party, once.
type SubmitReview struct {
	base
	audit *audit.Dispatcher
}

func NewSubmitReview(
	repo domain.Repository,
	auditD *audit.Dispatcher,
	timeout time.Duration,
) *SubmitReview {
	return &SubmitReview{
		base:  newBase(repo, timeout),
		audit: auditD,
	}
}

func (uc *SubmitReview) Execute(
	ctx context.Context,
	in SubmitReviewInput,
) (*models.Review, error) {

	ctx, cancel := uc.opCtx(ctx)
	defer cancel()

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if _, err := actorOf(in.AuthorID, ap.BuyerID, ap.SellerID); err != nil {
		return nil, err
	}

	if domain.Status(ap.Status) != domain.StatusCompleted {
		return nil, domain.ErrInvalidTransition
	}

	exists, err := uc.repo.HasReview(ctx, ap.ID, in.AuthorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("already_reviewed")
	}

	target := ap.SellerID
	if in.AuthorID == ap.SellerID {
		target = ap.BuyerID
	}

	rv := &models.Review{
		AppointmentID: ap.ID,
		AuthorID:      in.AuthorID,
		TargetID:      target,
		Rating:        in.Rating,
		Comment:       in.Comment,
	}

	if err := uc.repo.CreateReview(ctx, rv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.AuthorID,
		Action:   "review_submitted",
		Entity:   "review",
		EntityID: &rv.ID,
	})

	return rv, nil
}
