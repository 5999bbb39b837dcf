// internal/repository/result.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResultRepositoryIface interface {
	Create(ctx context.Context, result *model.Result) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Result, error)
	FindByUserAndCompany(ctx context.Context, userID, companyID uuid.UUID) ([]*model.Result, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Result, error)
	FindByQuizzes(ctx context.Context, quizIDs []uuid.UUID) ([]*model.Result, error)
	LastAttempt(ctx context.Context, userID, quizID uuid.UUID) (*time.Time, error)
}

type ResultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) Create(ctx context.Context, result *model.Result) error {
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		return fmt.Errorf("creating result: %w", err)
	}
	return nil
}

func (r *ResultRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Result, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *ResultRepository) FindByUserAndCompany(ctx context.Context, userID, companyID uuid.UUID) ([]*model.Result, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("user_id = ? AND company_id = ?", userID, companyID))
}

func (r *ResultRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Result, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("company_id = ?", companyID))
}

func (r *ResultRepository) FindByQuizzes(ctx context.Context, quizIDs []uuid.UUID) ([]*model.Result, error) {
	if len(quizIDs) == 0 {
		return nil, nil
	}
	return r.find(ctx, r.db.WithContext(ctx).Where("quiz_id IN ?", quizIDs))
}

func (r *ResultRepository) find(_ context.Context, q *gorm.DB) ([]*model.Result, error) {
	var results []*model.Result
	if err := q.Order("created_at").Find(&results).Error; err != nil {
		return nil, fmt.Errorf("finding results: %w", err)
	}
	return results, nil
}

// LastAttempt returns the time of the user's latest result for the quiz, or nil.
func (r *ResultRepository) LastAttempt(ctx context.Context, userID, quizID uuid.UUID) (*time.Time, error) {
	var result model.Result
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("created_at DESC").
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding last attempt: %w", err)
	}
	return &result.CreatedAt, nil
}
