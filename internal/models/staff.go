package models

import "time"

// Diarista
type StaffMember struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Name       string `gorm:"size:100;not null" json:"name"`
	Phone      string `gorm:"size:20;not null" json:"phone"`
	Email      string `gorm:"size:100" json:"email"`
	Address    string `gorm:"size:255" json:"address"`
	City       string `gorm:"size:100" json:"city"`
	PostalCode string `gorm:"size:10" json:"postal_code"`

	DailyRate int64      `json:"daily_rate"`
	Active    bool       `gorm:"default:true" json:"active"`
	HiredAt   *time.Time `json:"hired_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Specialty struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StaffSpecialty struct {
	StaffID     uint `gorm:"primaryKey" json:"staff_id"`
	SpecialtyID uint `gorm:"primaryKey" json:"specialty_id"`

	CreatedAt time.Time `json:"created_at"`
}
