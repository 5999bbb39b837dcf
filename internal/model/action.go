// internal/model/action.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ActionKind string

const (
	KindInvitation ActionKind = "invitation"
	KindRequest    ActionKind = "request"
)

type ActionState string

const (
	StateSent     ActionState = "sent"
	StateAccepted ActionState = "accepted"
	StateRefused  ActionState = "refused"
	StateCanceled ActionState = "canceled"
)

// transitions lists every allowed state change. Anything absent is rejected.
var transitions = map[ActionState][]ActionState{
	StateSent: {StateAccepted, StateRefused, StateCanceled},
}

// CanTransition reports whether an action may move from one state to another.
func CanTransition(from, to ActionState) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves the state.
func (s ActionState) Terminal() bool {
	return len(transitions[s]) == 0
}

func (k ActionKind) Valid() bool {
	return k == KindInvitation || k == KindRequest
}

// Action is one invitation or join request between a user and a company.
// At most one row per (user, company, kind) is in the sent state.
type Action struct {
	ID        uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	CompanyID uuid.UUID   `gorm:"type:uuid;not null;index" json:"company_id"`
	Kind      ActionKind  `gorm:"column:kind;type:text;not null" json:"action"`
	State     ActionState `gorm:"type:text;not null;default:'sent'" json:"state"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Company Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
}
