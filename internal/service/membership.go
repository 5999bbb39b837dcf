// internal/service/membership.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Ar-Dante/Quiz-platform/internal/access"
	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/repository"
	"github.com/google/uuid"
)

// MembershipService owns membership rows and the admin flag.
type MembershipService struct {
	repo repository.MembershipRepositoryIface
}

func NewMembershipService(repo repository.MembershipRepositoryIface) *MembershipService {
	return &MembershipService{repo: repo}
}

// AddMember inserts a membership without precondition checks. Callers
// validate the workflow state first.
func (s *MembershipService) AddMember(ctx context.Context, userID, companyID uuid.UUID) (uuid.UUID, error) {
	m := &model.Membership{UserID: userID, CompanyID: companyID}
	if err := s.repo.Create(ctx, m); err != nil {
		return uuid.Nil, err
	}
	slog.InfoContext(ctx, "member added", "user_id", userID, "company_id", companyID)
	return m.ID, nil
}

// GetMember returns nil, nil when the user is not a member.
func (s *MembershipService) GetMember(ctx context.Context, userID, companyID uuid.UUID) (*model.Membership, error) {
	return s.repo.FindByUserAndCompany(ctx, userID, companyID)
}

func (s *MembershipService) ExitCompany(ctx context.Context, userID uuid.UUID, company *model.Company, caller uuid.UUID) error {
	if err := access.Self(caller, userID); err != nil {
		return err
	}
	return s.deleteMember(ctx, userID, company)
}

func (s *MembershipService) RemoveMember(ctx context.Context, userID uuid.UUID, company *model.Company, caller uuid.UUID) error {
	if err := access.Owner(caller, company); err != nil {
		return err
	}
	return s.deleteMember(ctx, userID, company)
}

func (s *MembershipService) deleteMember(ctx context.Context, userID uuid.UUID, company *model.Company) error {
	member, err := s.repo.FindByUserAndCompany(ctx, userID, company.ID)
	if err != nil {
		return err
	}
	if member == nil {
		return domain.ErrMemberNotFound
	}
	if err := s.repo.Delete(ctx, member.ID); err != nil {
		return fmt.Errorf("removing member: %w", err)
	}
	slog.InfoContext(ctx, "member removed", "user_id", userID, "company_id", company.ID)
	return nil
}

func (s *MembershipService) ListMembers(ctx context.Context, companyID uuid.UUID, page repository.Page) ([]*model.Membership, error) {
	return s.repo.FindByCompany(ctx, companyID, false, page)
}

func (s *MembershipService) ListAdmins(ctx context.Context, companyID uuid.UUID, page repository.Page) ([]*model.Membership, error) {
	return s.repo.FindByCompany(ctx, companyID, true, page)
}

// AllMembers is unpaginated, for fan-out and background sweeps.
func (s *MembershipService) AllMembers(ctx context.Context, companyID uuid.UUID) ([]*model.Membership, error) {
	return s.repo.FindAllByCompany(ctx, companyID)
}

func (s *MembershipService) PromoteAdmin(ctx context.Context, userID uuid.UUID, company *model.Company, caller uuid.UUID) error {
	return s.setAdmin(ctx, userID, company, caller, true)
}

func (s *MembershipService) DemoteAdmin(ctx context.Context, userID uuid.UUID, company *model.Company, caller uuid.UUID) error {
	return s.setAdmin(ctx, userID, company, caller, false)
}

func (s *MembershipService) setAdmin(ctx context.Context, userID uuid.UUID, company *model.Company, caller uuid.UUID, admin bool) error {
	if err := access.Owner(caller, company); err != nil {
		return err
	}
	// the owner sits above admins and never holds the flag
	if caller == userID {
		return domain.ErrOwnerIsNotAdmin
	}

	member, err := s.repo.FindByUserAndCompany(ctx, userID, company.ID)
	if err != nil {
		return err
	}
	if member == nil {
		return domain.ErrMemberNotFound
	}
	if member.IsAdmin == admin {
		if admin {
			return domain.ErrAlreadyAdmin
		}
		return domain.ErrNotAdmin
	}

	if err := s.repo.SetAdmin(ctx, member.ID, admin); err != nil {
		return err
	}
	slog.InfoContext(ctx, "admin flag changed", "user_id", userID, "company_id", company.ID, "is_admin", admin)
	return nil
}
