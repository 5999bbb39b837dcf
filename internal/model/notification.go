// internal/model/notification.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	QuizID    *uuid.UUID `gorm:"type:uuid" json:"quiz_id,omitempty"`
	Text      string     `gorm:"type:text;not null" json:"text"`
	IsRead    bool       `gorm:"not null;default:false" json:"is_read"`
	DedupeKey *string    `gorm:"type:text;uniqueIndex" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}
