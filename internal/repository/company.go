// internal/repository/company.go
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

type CompanyRepositoryIface interface {
	Create(ctx context.Context, company *model.Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindVisiblePaginated(ctx context.Context, viewer uuid.UUID, page Page) ([]*model.Company, error)
	FindBatch(ctx context.Context, page Page) ([]*model.Company, error)
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		return fmt.Errorf("creating company: %w", err)
	}
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("finding company: %w", err)
	}
	return &company, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *model.Company) error {
	if err := r.db.WithContext(ctx).Save(company).Error; err != nil {
		return fmt.Errorf("updating company: %w", err)
	}
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Company{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

// FindVisiblePaginated lists companies that are visible or owned by the viewer.
func (r *CompanyRepository) FindVisiblePaginated(ctx context.Context, viewer uuid.UUID, page Page) ([]*model.Company, error) {
	var companies []*model.Company
	err := page.apply(r.db.WithContext(ctx)).
		Where("is_visible = ? OR owner_id = ?", true, viewer).
		Order("created_at").
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	return companies, nil
}

// FindBatch walks every company in creation order, used by background sweeps.
func (r *CompanyRepository) FindBatch(ctx context.Context, page Page) ([]*model.Company, error) {
	var companies []*model.Company
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("reading company batch: %w", err)
	}
	return companies, nil
}
