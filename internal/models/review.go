package models

import "time"

// Review rates the other party of a completed appointment. One review per
// (appointment, author).
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"index:idx_review_appointment_author,unique" json:"appointment_id"`
	AuthorID      uint `gorm:"index:idx_review_appointment_author,unique" json:"author_id"`
	TargetID      uint `gorm:"index" json:"target_id"`

	Rating  int    `json:"rating"`
	Comment string `gorm:"size:500" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
