package models

import "time"

type Rating struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint `gorm:"index;not null" json:"user_id"`
	StaffID   uint `gorm:"index;not null" json:"staff_id"`
	BookingID uint `gorm:"index;not null" json:"booking_id"`

	Score   int    `gorm:"not null" json:"score"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
