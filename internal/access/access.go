// Package access holds the company authorization rules shared by every service.
package access

import (
	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/google/uuid"
)

// CompanyWrite allows the owner and admin members of a company.
func CompanyWrite(caller uuid.UUID, member *model.Membership, company *model.Company) error {
	if company.IsOwner(caller) {
		return nil
	}
	if member == nil {
		return domain.ErrMemberNotExists
	}
	if !member.IsAdmin {
		return domain.ErrAccessDenied
	}
	return nil
}

// CompanyParticipant allows the owner and any member of a company.
func CompanyParticipant(caller uuid.UUID, member *model.Membership, company *model.Company) error {
	if company.IsOwner(caller) || member != nil {
		return nil
	}
	return domain.ErrMemberNotFound
}

// Owner allows only the company owner.
func Owner(caller uuid.UUID, company *model.Company) error {
	if !company.IsOwner(caller) {
		return domain.ErrAccessDenied
	}
	return nil
}

// Self allows a caller to act only on their own user.
func Self(caller, user uuid.UUID) error {
	if caller != user {
		return domain.ErrAccessDenied
	}
	return nil
}
