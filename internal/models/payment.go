package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint  `gorm:"index;not null" json:"user_id"`
	StaffID   uint  `gorm:"index;not null" json:"staff_id"`
	BookingID *uint `gorm:"index" json:"booking_id"`

	Amount int64     `json:"amount"`
	PaidAt time.Time `json:"paid_at"`
	Method string    `gorm:"size:20;not null" json:"method"`
	Status string    `gorm:"size:20;default:'pending'" json:"status"`

	Description string `gorm:"type:text" json:"description"`
	ProofRef    string `gorm:"size:255" json:"proof_ref"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comprovante de pagamento enviado pelo usuário.
type ProofFile struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PaymentID uint `gorm:"index;not null" json:"payment_id"`

	URL         string `gorm:"size:500;not null" json:"url"`
	ContentType string `gorm:"size:50" json:"content_type"`
	FileName    string `gorm:"size:255" json:"file_name"`

	CreatedAt time.Time `json:"created_at"`
}
