package earnings

import (
	"context"
	"time"

	domain "github.com/bookora/marketplace-api/internal/domain/booking"
)

const monthLayout = "2006-01"

type SellerReport struct {
	TotalCents int64            `json:"total_cents"`
	Monthly    map[string]int64 `json:"monthly"`
}

// SellerEarnings folds a seller's settled ledger rows into a total and a
// monthly series. Only confirmed/completed rows with financial fields
// count; paid-but-unconfirmed money is in flight, not earned. The fold is
// recomputed from the ledger on every call so the numbers are always
// auditable against it.
type SellerEarnings struct {
	repo    domain.Repository
	timeout time.Duration
}

func NewSellerEarnings(repo domain.Repository, timeout time.Duration) *SellerEarnings {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SellerEarnings{repo: repo, timeout: timeout}
}

func (uc *SellerEarnings) Execute(
	ctx context.Context,
	sellerID uint,
) (*SellerReport, error) {

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	aps, err := uc.repo.ListSettledForSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	report := &SellerReport{Monthly: map[string]int64{}}
	for _, ap := range aps {
		if ap.SellerEarningsCents == nil || ap.PaidAt == nil {
			continue
		}
		report.TotalCents += *ap.SellerEarningsCents

		// Revenue is recognized when captured, not when the service
		// occurs, so the bucket key comes from paid_at.
		month := ap.PaidAt.Format(monthLayout)
		report.Monthly[month] += *ap.SellerEarningsCents
	}

	return report, nil
}
