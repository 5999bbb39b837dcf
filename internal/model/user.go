// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusInactive UserStatus = "inactive"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName    string     `gorm:"type:text;not null" json:"first_name"`
	LastName     string     `gorm:"type:text" json:"last_name"`
	Status       UserStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	City         string     `gorm:"type:text" json:"city,omitempty"`
	Phone        string     `gorm:"type:text" json:"phone,omitempty"`
	Links        string     `gorm:"type:text" json:"links,omitempty"`
	Avatar       string     `gorm:"type:text" json:"avatar,omitempty"`
	PasswordHash string     `gorm:"type:text" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// DisplayName is used in notification mails.
func (u *User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
