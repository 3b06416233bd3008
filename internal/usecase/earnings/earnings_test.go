package earnings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bookora/marketplace-api/internal/domain/booking"
	"github.com/bookora/marketplace-api/internal/models"
)

// ledgerStub serves a fixed settled ledger. The embedded interface panics
// on anything these usecases must never call.
type ledgerStub struct {
	domain.Repository
	rows []models.Appointment
}

func (s ledgerStub) ListSettledForSeller(ctx context.Context, sellerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range s.rows {
		if ap.SellerID == sellerID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (s ledgerStub) ListSettled(ctx context.Context) ([]models.Appointment, error) {
	return s.rows, nil
}

func settledRow(sellerID uint, amount, fee, earnings int64, paidAt time.Time, status domain.Status) models.Appointment {
	return models.Appointment{
		SellerID:            sellerID,
		Status:              string(status),
		AmountCents:         &amount,
		PlatformFeeCents:    &fee,
		SellerEarningsCents: &earnings,
		PaidAt:              &paidAt,
	}
}

func TestSellerEarningsTotalsAndMonthlyBuckets(t *testing.T) {
	jan := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)

	stub := ledgerStub{rows: []models.Appointment{
		settledRow(1, 10000, 250, 9750, jan, domain.StatusConfirmed),
		settledRow(1, 4000, 100, 3900, jan, domain.StatusCompleted),
		settledRow(1, 2000, 50, 1950, feb, domain.StatusCompleted),
		settledRow(2, 8000, 200, 7800, jan, domain.StatusConfirmed),
	}}

	uc := NewSellerEarnings(stub, time.Second)
	report, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(9750+3900+1950), report.TotalCents)
	assert.Equal(t, int64(9750+3900), report.Monthly["2026-01"])
	assert.Equal(t, int64(1950), report.Monthly["2026-02"])
	assert.Len(t, report.Monthly, 2)
}

func TestSellerEarningsEmptyLedger(t *testing.T) {
	uc := NewSellerEarnings(ledgerStub{}, time.Second)
	report, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	assert.Zero(t, report.TotalCents)
	assert.Empty(t, report.Monthly)
}

func TestSellerEarningsSkipsIncompleteRows(t *testing.T) {
	paidAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	earnings := int64(500)

	stub := ledgerStub{rows: []models.Appointment{
		// Settled but missing paid_at: excluded rather than mis-bucketed.
		{SellerID: 1, Status: string(domain.StatusConfirmed), SellerEarningsCents: &earnings},
		{SellerID: 1, Status: string(domain.StatusConfirmed), PaidAt: &paidAt},
		settledRow(1, 1000, 25, 975, paidAt, domain.StatusConfirmed),
	}}

	uc := NewSellerEarnings(stub, time.Second)
	report, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(975), report.TotalCents)
	assert.Equal(t, int64(975), report.Monthly["2026-03"])
}

func TestPlatformTotals(t *testing.T) {
	paidAt := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	stub := ledgerStub{rows: []models.Appointment{
		settledRow(1, 10000, 250, 9750, paidAt, domain.StatusConfirmed),
		settledRow(2, 4000, 100, 3900, paidAt, domain.StatusCompleted),
	}}

	uc := NewPlatformTotals(stub, time.Second)
	report, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(14000), report.TotalCents)
	assert.Equal(t, int64(350), report.PlatformFeeCents)
	assert.Equal(t, int64(13650), report.SellerEarningsCents)
	assert.Equal(t, report.TotalCents, report.PlatformFeeCents+report.SellerEarningsCents)
}
