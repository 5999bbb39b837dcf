// internal/repository/membership.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepositoryIface interface {
	Create(ctx context.Context, membership *model.Membership) error
	FindByUserAndCompany(ctx context.Context, userID, companyID uuid.UUID) (*model.Membership, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error
	FindByCompany(ctx context.Context, companyID uuid.UUID, adminsOnly bool, page Page) ([]*model.Membership, error)
	FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Membership, error)
}

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Create(ctx context.Context, membership *model.Membership) error {
	if err := r.db.WithContext(ctx).Create(membership).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrMemberExists
		}
		return fmt.Errorf("creating membership: %w", err)
	}
	return nil
}

// FindByUserAndCompany returns nil without error when the user is not a member.
func (r *MembershipRepository) FindByUserAndCompany(ctx context.Context, userID, companyID uuid.UUID) (*model.Membership, error) {
	var membership model.Membership
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding membership: %w", err)
	}
	return &membership, nil
}

func (r *MembershipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Membership{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting membership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *MembershipRepository) SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.Membership{}).
		Where("id = ?", id).
		Update("is_admin", isAdmin)
	if result.Error != nil {
		return fmt.Errorf("updating admin flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *MembershipRepository) FindByCompany(ctx context.Context, companyID uuid.UUID, adminsOnly bool, page Page) ([]*model.Membership, error) {
	var memberships []*model.Membership
	q := page.apply(r.db.WithContext(ctx)).Where("company_id = ?", companyID)
	if adminsOnly {
		q = q.Where("is_admin = ?", true)
	}
	if err := q.Order("created_at").Find(&memberships).Error; err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}
	return memberships, nil
}

func (r *MembershipRepository) FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Membership, error) {
	var memberships []*model.Membership
	if err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&memberships).Error; err != nil {
		return nil, fmt.Errorf("listing all memberships: %w", err)
	}
	return memberships, nil
}
