package models

import "time"

// Service is offered by exactly one seller. Prices are integer cents so a
// settlement split can never drift from the captured amount.
type Service struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	SellerID uint `gorm:"index" json:"seller_id"`
	Seller   User `gorm:"foreignKey:SellerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	PriceCents  int64  `json:"price_cents"`
	DurationMin int    `json:"duration_min"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
