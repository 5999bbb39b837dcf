// internal/repository/question.go
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

type QuestionRepositoryIface interface {
	Create(ctx context.Context, question *model.Question) error
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByQuiz(ctx context.Context, quizID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error)
	FindByQuiz(ctx context.Context, quizID uuid.UUID, page Page) ([]*model.Question, error)
	FindAllByQuiz(ctx context.Context, quizID uuid.UUID) ([]*model.Question, error)
}

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) Create(ctx context.Context, question *model.Question) error {
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("creating question: %w", err)
	}
	return nil
}

func (r *QuestionRepository) Update(ctx context.Context, question *model.Question) error {
	if err := r.db.WithContext(ctx).Save(question).Error; err != nil {
		return fmt.Errorf("updating question: %w", err)
	}
	return nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Question{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepository) DeleteByQuiz(ctx context.Context, quizID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.Question{}, "quiz_id = ?", quizID).Error; err != nil {
		return fmt.Errorf("deleting quiz questions: %w", err)
	}
	return nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("finding question: %w", err)
	}
	return &question, nil
}

func (r *QuestionRepository) FindByQuiz(ctx context.Context, quizID uuid.UUID, page Page) ([]*model.Question, error) {
	var questions []*model.Question
	err := page.apply(r.db.WithContext(ctx)).
		Where("quiz_id = ?", quizID).
		Order("created_at, id").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	return questions, nil
}

// FindAllByQuiz returns the questions in the order answers are scored against.
func (r *QuestionRepository) FindAllByQuiz(ctx context.Context, quizID uuid.UUID) ([]*model.Question, error) {
	var questions []*model.Question
	err := r.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("created_at, id").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("listing all questions: %w", err)
	}
	return questions, nil
}
