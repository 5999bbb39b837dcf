// internal/repository/action.go
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

type ActionRepositoryIface interface {
	Create(ctx context.Context, action *model.Action) error
	FindSent(ctx context.Context, userID, companyID uuid.UUID, kind model.ActionKind) (*model.Action, error)
	Transition(ctx context.Context, id uuid.UUID, from, to model.ActionState) (bool, error)
	FindSentByCompany(ctx context.Context, companyID uuid.UUID, kind model.ActionKind, page Page) ([]*model.Action, error)
	FindSentByUser(ctx context.Context, userID uuid.UUID, kind model.ActionKind, page Page) ([]*model.Action, error)
}

type ActionRepository struct {
	db *gorm.DB
}

func NewActionRepository(db *gorm.DB) *ActionRepository {
	return &ActionRepository{db: db}
}

// Create inserts a sent action. The partial unique index rejects a second live
// action for the same user, company and kind, and the user foreign key rejects
// unknown users.
func (r *ActionRepository) Create(ctx context.Context, action *model.Action) error {
	if err := r.db.WithContext(ctx).Create(action).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			if action.Kind == model.KindInvitation {
				return domain.ErrUserInvited
			}
			return domain.ErrRequestSent
		}
		return fmt.Errorf("creating action: %w", err)
	}
	return nil
}

// FindSent returns the live action for the tuple, or nil when there is none.
func (r *ActionRepository) FindSent(ctx context.Context, userID, companyID uuid.UUID, kind model.ActionKind) (*model.Action, error) {
	var action model.Action
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND company_id = ? AND kind = ? AND state = ?", userID, companyID, kind, model.StateSent).
		Order("created_at DESC").
		First(&action).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding sent action: %w", err)
	}
	return &action, nil
}

// Transition moves the action to a new state only if it is still in the
// expected one. It reports false when another writer got there first.
func (r *ActionRepository) Transition(ctx context.Context, id uuid.UUID, from, to model.ActionState) (bool, error) {
	if !model.CanTransition(from, to) {
		return false, domain.ErrInvalidTransition
	}
	result := r.db.WithContext(ctx).
		Model(&model.Action{}).
		Where("id = ? AND state = ?", id, from).
		Update("state", to)
	if result.Error != nil {
		return false, fmt.Errorf("updating action state: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *ActionRepository) FindSentByCompany(ctx context.Context, companyID uuid.UUID, kind model.ActionKind, page Page) ([]*model.Action, error) {
	var actions []*model.Action
	err := page.apply(r.db.WithContext(ctx)).
		Where("company_id = ? AND kind = ? AND state = ?", companyID, kind, model.StateSent).
		Order("created_at").
		Find(&actions).Error
	if err != nil {
		return nil, fmt.Errorf("listing company actions: %w", err)
	}
	return actions, nil
}

func (r *ActionRepository) FindSentByUser(ctx context.Context, userID uuid.UUID, kind model.ActionKind, page Page) ([]*model.Action, error) {
	var actions []*model.Action
	err := page.apply(r.db.WithContext(ctx)).
		Where("user_id = ? AND kind = ? AND state = ?", userID, kind, model.StateSent).
		Order("created_at").
		Find(&actions).Error
	if err != nil {
		return nil, fmt.Errorf("listing user actions: %w", err)
	}
	return actions, nil
}
