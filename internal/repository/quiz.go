// internal/repository/quiz.go
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

type QuizRepositoryIface interface {
	Create(ctx context.Context, quiz *model.Quiz) error
	Update(ctx context.Context, quiz *model.Quiz) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID, page Page) ([]*model.Quiz, error)
	FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Quiz, error)
}

type QuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

func (r *QuizRepository) Create(ctx context.Context, quiz *model.Quiz) error {
	if err := r.db.WithContext(ctx).Create(quiz).Error; err != nil {
		return fmt.Errorf("creating quiz: %w", err)
	}
	return nil
}

func (r *QuizRepository) Update(ctx context.Context, quiz *model.Quiz) error {
	if err := r.db.WithContext(ctx).Save(quiz).Error; err != nil {
		return fmt.Errorf("updating quiz: %w", err)
	}
	return nil
}

func (r *QuizRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Quiz{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting quiz: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrQuizNotFound
	}
	return nil
}

func (r *QuizRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.WithContext(ctx).First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuizNotFound
		}
		return nil, fmt.Errorf("finding quiz: %w", err)
	}
	return &quiz, nil
}

func (r *QuizRepository) FindByCompany(ctx context.Context, companyID uuid.UUID, page Page) ([]*model.Quiz, error) {
	var quizzes []*model.Quiz
	err := page.apply(r.db.WithContext(ctx)).
		Where("company_id = ?", companyID).
		Order("created_at").
		Find(&quizzes).Error
	if err != nil {
		return nil, fmt.Errorf("listing quizzes: %w", err)
	}
	return quizzes, nil
}

func (r *QuizRepository) FindAllByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Quiz, error) {
	var quizzes []*model.Quiz
	if err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&quizzes).Error; err != nil {
		return nil, fmt.Errorf("listing all quizzes: %w", err)
	}
	return quizzes, nil
}
