package models

import "time"

const (
	NotificationStaffCreated      = "staff_created"
	NotificationBookingCreated    = "booking_created"
	NotificationPaymentRegistered = "payment_registered"
	NotificationReceiptIssued     = "receipt_issued"
	NotificationSuspiciousAccess  = "suspicious_access"
)

// Notificação exibida no painel do administrador.
type Notification struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Kind        string `gorm:"size:30;not null" json:"kind"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"size:50" json:"icon"`
	Color       string `gorm:"size:20" json:"color"`

	Read         bool `gorm:"default:false;index" json:"read"`
	WhatsAppSent bool `gorm:"default:false" json:"whatsapp_sent"`

	EntityID    *uint  `json:"entity_id"`
	EntityTable string `gorm:"size:50" json:"entity_table"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
