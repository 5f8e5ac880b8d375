package models

import "time"

// Agendamento. Datas são dias civis no fuso configurado (meia-noite local).
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`

	StaffID uint        `gorm:"index;not null" json:"staff_id"`
	Staff   StaffMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"staff,omitempty"`

	SpecialtyID uint      `gorm:"index;not null" json:"specialty_id"`
	Specialty   Specialty `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"specialty,omitempty"`

	ServiceAddress string    `gorm:"size:255;not null" json:"service_address"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Description    string    `gorm:"type:text" json:"description"`

	Status     string `gorm:"size:20;default:'scheduled'" json:"status"`
	DailyRate  int64  `json:"daily_rate"`
	TotalPrice *int64 `json:"total_price"`

	Notes       string     `gorm:"type:text" json:"notes"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
