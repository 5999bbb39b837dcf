package service

import (
	"context"
	"testing"

	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/mocks"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateCompany(t *testing.T) {
	ctx := context.Background()
	caller := uuid.New()
	repo := mocks.NewMockCompanyRepositoryIface(gomock.NewController(t))
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	hidden := false
	company, err := NewCompanyService(repo).Create(ctx, CompanyInput{Name: "Acme", IsVisible: &hidden}, caller)
	require.NoError(t, err)
	assert.Equal(t, caller, company.OwnerID)
	assert.False(t, company.IsVisible)
}

func TestGetHiddenCompany(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.company.IsVisible = false

	repo := mocks.NewMockCompanyRepositoryIface(gomock.NewController(t))
	repo.EXPECT().FindByID(ctx, f.company.ID).Return(f.company, nil).Times(2)
	svc := NewCompanyService(repo)

	_, err := svc.Get(ctx, f.company.ID, f.member)
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)

	got, err := svc.Get(ctx, f.company.ID, f.owner)
	require.NoError(t, err)
	assert.Equal(t, f.company, got)
}

func TestCompanyOwnerOnlyWrites(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	repo := mocks.NewMockCompanyRepositoryIface(gomock.NewController(t))
	repo.EXPECT().FindByID(ctx, f.company.ID).Return(f.company, nil).Times(2)
	svc := NewCompanyService(repo)

	_, err := svc.Update(ctx, f.company.ID, CompanyInput{Name: "Renamed"}, f.admin)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	err = svc.Delete(ctx, f.company.ID, f.member)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestUpdateCompany(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	repo := mocks.NewMockCompanyRepositoryIface(gomock.NewController(t))
	repo.EXPECT().FindByID(ctx, f.company.ID).Return(f.company, nil)
	repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *model.Company) error {
		assert.Equal(t, "Renamed", c.Name)
		return nil
	})

	got, err := NewCompanyService(repo).Update(ctx, f.company.ID, CompanyInput{Name: "Renamed"}, f.owner)
	require.NoError(t, err)
	assert.True(t, got.IsVisible)
}
