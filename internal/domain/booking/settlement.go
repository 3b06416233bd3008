package booking

import "github.com/bookora/marketplace-api/internal/models"

// PlatformFeePermille is the platform's cut of every captured payment,
// expressed in thousandths (25 = 2.5%).
const PlatformFeePermille = 25

type Settlement struct {
	AmountCents         int64
	PlatformFeeCents    int64
	SellerEarningsCents int64
}

// Settle computes the one-time fee/earnings split at payment capture.
// The fee is rounded half-up in integer arithmetic and the seller's share
// is the remainder, so the two always sum to the amount exactly.
func Settle(ap *models.Appointment, svc *models.Service) (Settlement, error) {
	if ap.AmountCents != nil || ap.PlatformFeeCents != nil || ap.SellerEarningsCents != nil {
		return Settlement{}, ErrAlreadySettled
	}

	amount := svc.PriceCents
	fee := (amount*PlatformFeePermille + 500) / 1000

	return Settlement{
		AmountCents:         amount,
		PlatformFeeCents:    fee,
		SellerEarningsCents: amount - fee,
	}, nil
}
