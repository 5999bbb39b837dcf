// internal/model/quiz.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Quiz struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Title       string    `gorm:"type:text" json:"title,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Frequency   int       `gorm:"not null" json:"frequency"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	UpdatedBy   uuid.UUID `gorm:"type:uuid;not null" json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Company Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
}

type Question struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuizID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"quiz_id"`
	CompanyID     uuid.UUID  `gorm:"type:uuid;not null" json:"company_id"`
	Text          string     `gorm:"type:text;not null" json:"question"`
	Answers       StringList `gorm:"type:jsonb;not null" json:"answers"`
	CorrectAnswer string     `gorm:"type:text;not null" json:"correct_answer"`
	CreatedBy     uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	UpdatedBy     uuid.UUID  `gorm:"type:uuid;not null" json:"updated_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Quiz Quiz `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
}

// StringList is an ordered list of strings stored as JSONB.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB string list")
	}
	return json.Unmarshal(raw, (*[]string)(l))
}
