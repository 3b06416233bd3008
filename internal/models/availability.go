package models

import "time"

// AvailabilityWindow is one seller's recurring open-hours interval for one
// weekday (0 = Sunday). At most one row per (seller, weekday); an inactive
// row means "explicitly closed", which is not the same as having no rows.
type AvailabilityWindow struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	SellerID uint `gorm:"index:idx_availability_seller_weekday,unique" json:"seller_id"`

	Weekday int `gorm:"index:idx_availability_seller_weekday,unique" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
