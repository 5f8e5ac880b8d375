package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint  `gorm:"index" json:"user_id"`
	Action string `gorm:"size:50;not null;index" json:"action"`

	Entity      string `gorm:"size:50" json:"entity"`
	EntityID    *uint  `json:"entity_id"`
	Description string `gorm:"size:255" json:"description"`
	Metadata    string `gorm:"type:text" json:"metadata"`

	IPAddress    string `gorm:"size:45" json:"ip_address"`
	UserAgent    string `gorm:"size:255" json:"user_agent"`
	Status       string `gorm:"size:20;default:'success'" json:"status"`
	ErrorMessage string `gorm:"type:text" json:"error_message,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
