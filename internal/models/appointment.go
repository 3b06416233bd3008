package models

import "time"

// Appointment is the ledger row for one buyer booking one seller's service
// at one slot. Financial fields are nil until payment capture and always
// satisfy amount == platform fee + seller earnings once set.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BuyerID uint `gorm:"index" json:"buyer_id"`
	Buyer   User `gorm:"foreignKey:BuyerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	SellerID uint `gorm:"index" json:"seller_id"`
	Seller   User `gorm:"foreignKey:SellerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date      string `gorm:"size:10;index" json:"date"`
	StartTime string `gorm:"size:5" json:"start_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	AmountCents         *int64  `json:"amount_cents"`
	PlatformFeeCents    *int64  `json:"platform_fee_cents"`
	SellerEarningsCents *int64  `json:"seller_earnings_cents"`
	PaymentRef          *string `gorm:"size:64" json:"payment_ref"`

	PaidAt      *time.Time `json:"paid_at"`
	ApprovedAt  *time.Time `json:"approved_at"`
	RejectedAt  *time.Time `json:"rejected_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
