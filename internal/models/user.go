package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	OpenID string `gorm:"size:64;uniqueIndex;not null" json:"open_id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	LoginMethod  string `gorm:"size:20;default:'password'" json:"login_method"`
	Role         string `gorm:"size:20;default:'user'" json:"role"`

	LastSignedIn *time.Time `json:"last_signed_in"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
