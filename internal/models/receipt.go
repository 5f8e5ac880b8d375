package models

import "time"

// Recibo
type Receipt struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint  `gorm:"index;not null" json:"user_id"`
	PaymentID uint  `gorm:"uniqueIndex;not null" json:"payment_id"`
	BookingID *uint `json:"booking_id"`
	StaffID   uint  `gorm:"index;not null" json:"staff_id"`

	URL      string     `gorm:"size:500" json:"url"`
	Signed   bool       `gorm:"default:false" json:"signed"`
	SignedAt *time.Time `json:"signed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
