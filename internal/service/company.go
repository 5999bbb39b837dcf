// internal/service/company.go
package service

import (
	"context"
	"log/slog"

	"github.com/Ar-Dante/Quiz-platform/internal/access"
	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/repository"
	"github.com/google/uuid"
)

type CompanyService struct {
	repo repository.CompanyRepositoryIface
}

func NewCompanyService(repo repository.CompanyRepositoryIface) *CompanyService {
	return &CompanyService{repo: repo}
}

type CompanyInput struct {
	Name        string `json:"name" validate:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
	IsVisible   *bool  `json:"is_visible"`
}

func (s *CompanyService) Create(ctx context.Context, in CompanyInput, caller uuid.UUID) (*model.Company, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	company := &model.Company{OwnerID: caller, IsVisible: true}
	in.apply(company)

	if err := s.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "company created", "company_id", company.ID, "owner_id", caller)
	return company, nil
}

func (in CompanyInput) apply(c *model.Company) {
	c.Name = in.Name
	c.Title = in.Title
	c.Description = in.Description
	c.City = in.City
	c.Phone = in.Phone
	if in.IsVisible != nil {
		c.IsVisible = *in.IsVisible
	}
}

// Find loads a company without visibility rules. Services that authorize
// the caller themselves start from here.
func (s *CompanyService) Find(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	return s.repo.FindByID(ctx, id)
}

// Get hides invisible companies from everyone but the owner.
func (s *CompanyService) Get(ctx context.Context, id, caller uuid.UUID) (*model.Company, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !company.VisibleTo(caller) {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

func (s *CompanyService) List(ctx context.Context, caller uuid.UUID, page repository.Page) ([]*model.Company, error) {
	return s.repo.FindVisiblePaginated(ctx, caller, page)
}

func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, in CompanyInput, caller uuid.UUID) (*model.Company, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Owner(caller, company); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	in.apply(company)
	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) Delete(ctx context.Context, id, caller uuid.UUID) error {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := access.Owner(caller, company); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "company deleted", "company_id", id)
	return nil
}
