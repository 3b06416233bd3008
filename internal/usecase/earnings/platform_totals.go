package earnings

import (
	"context"
	"time"

	domain "github.com/bookora/marketplace-api/internal/domain/booking"
)

type PlatformReport struct {
	TotalCents          int64 `json:"total_cents"`
	PlatformFeeCents    int64 `json:"platform_fee_cents"`
	SellerEarningsCents int64 `json:"seller_earnings_cents"`
}

// PlatformTotals folds every settled appointment into platform-wide
// totals, with the same recognition policy as SellerEarnings.
type PlatformTotals struct {
	repo    domain.Repository
	timeout time.Duration
}

func NewPlatformTotals(repo domain.Repository, timeout time.Duration) *PlatformTotals {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &PlatformTotals{repo: repo, timeout: timeout}
}

func (uc *PlatformTotals) Execute(ctx context.Context) (*PlatformReport, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	aps, err := uc.repo.ListSettled(ctx)
	if err != nil {
		return nil, err
	}

	report := &PlatformReport{}
	for _, ap := range aps {
		if ap.AmountCents == nil || ap.PlatformFeeCents == nil || ap.SellerEarningsCents == nil {
			continue
		}
		report.TotalCents += *ap.AmountCents
		report.PlatformFeeCents += *ap.PlatformFeeCents
		report.SellerEarningsCents += *ap.SellerEarningsCents
	}

	return report, nil
}
