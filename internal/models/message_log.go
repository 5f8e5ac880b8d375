package models

import "time"

const (
	MessageKindBooking = "booking"
	MessageKindPayment = "payment"
	MessageKindReceipt = "receipt"
	MessageKindNotice  = "notice"

	MessageStatusPending = "pending"
	MessageStatusSent    = "sent"
	MessageStatusFailed  = "failed"
)

// Registro de cada mensagem de WhatsApp enviada (ou tentada).
type MessageLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID *uint `gorm:"index" json:"booking_id"`
	PaymentID *uint `gorm:"index" json:"payment_id"`
	StaffID   *uint `json:"staff_id"`

	Phone  string `gorm:"size:30;not null" json:"phone"`
	Kind   string `gorm:"size:20;not null" json:"kind"`
	Body   string `gorm:"type:text" json:"body"`
	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Error  string `gorm:"size:255" json:"error,omitempty"`

	SentAt    *time.Time `json:"sent_at"`
	CreatedAt time.Time  `json:"created_at"`
}
