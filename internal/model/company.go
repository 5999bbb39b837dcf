// internal/model/company.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Title       string    `gorm:"type:text" json:"title,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	City        string    `gorm:"type:text" json:"city,omitempty"`
	Phone       string    `gorm:"type:text" json:"phone,omitempty"`
	IsVisible   bool      `gorm:"not null;default:true" json:"is_visible"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Owner User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsOwner reports whether the user owns the company.
func (c *Company) IsOwner(userID uuid.UUID) bool {
	return c != nil && c.OwnerID == userID
}

// VisibleTo reports whether a non-visible company should be hidden from the user.
func (c *Company) VisibleTo(userID uuid.UUID) bool {
	return c.IsVisible || c.IsOwner(userID)
}

// Membership links a non-owner user to a company. The owner never has a row.
type Membership struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_company" json:"user_id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_company;index" json:"company_id"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Company Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
}
