package service

import (
	"context"
	"testing"
	"time"

	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/mocks"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 0.0, AverageRating([]*model.Result{{RightCount: 0, TotalCount: 0}}))
	assert.InDelta(t, 0.6, AverageRating([]*model.Result{
		{RightCount: 1, TotalCount: 2},
		{RightCount: 2, TotalCount: 3},
	}), 1e-9)
}

func TestUserAverageInCompany(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("no results", func(t *testing.T) {
		repo := mocks.NewMockResultRepositoryIface(gomock.NewController(t))
		repo.EXPECT().FindByUserAndCompany(ctx, f.member, f.company.ID).Return(nil, nil)

		_, err := NewResultService(repo).UserAverageInCompany(ctx, f.member, f.company, f.membership(f.member, false), f.member)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("stranger", func(t *testing.T) {
		repo := mocks.NewMockResultRepositoryIface(gomock.NewController(t))
		_, err := NewResultService(repo).UserAverageInCompany(ctx, f.member, f.company, nil, f.outside)
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})

	t.Run("average", func(t *testing.T) {
		repo := mocks.NewMockResultRepositoryIface(gomock.NewController(t))
		repo.EXPECT().FindByUserAndCompany(ctx, f.member, f.company.ID).Return([]*model.Result{
			{RightCount: 3, TotalCount: 4},
		}, nil)

		avg, err := NewResultService(repo).UserAverageInCompany(ctx, f.member, f.company, nil, f.owner)
		require.NoError(t, err)
		assert.Equal(t, 0.75, avg)
	})
}

func TestUserLastAttemptsFiltersFormerMembers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	former := uuid.New()
	quizID := uuid.New()
	day1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := day1.Add(26 * time.Hour)

	repo := mocks.NewMockResultRepositoryIface(gomock.NewController(t))
	repo.EXPECT().FindByCompany(ctx, f.company.ID).Return([]*model.Result{
		{UserID: f.member, QuizID: quizID, RightCount: 1, TotalCount: 2, CreatedAt: day1},
		{UserID: f.member, QuizID: quizID, RightCount: 2, TotalCount: 2, CreatedAt: day2},
		{UserID: former, QuizID: quizID, RightCount: 2, TotalCount: 2, CreatedAt: day2},
	}, nil)

	members := []*model.Membership{f.membership(f.member, false)}
	got, err := NewResultService(repo).UserLastAttempts(ctx, f.company, members, nil, f.owner)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, f.member, got[0].SubjectID)
	assert.Equal(t, day2, got[0].LastAttempt)
	assert.Equal(t, 0.75, got[0].Average)
}

func TestQuizAveragesByTime(t *testing.T) {
	ctx := context.Background()
	quizID := uuid.New()
	day1 := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC)

	repo := mocks.NewMockResultRepositoryIface(gomock.NewController(t))
	repo.EXPECT().FindByQuizzes(ctx, []uuid.UUID{quizID}).Return([]*model.Result{
		{QuizID: quizID, RightCount: 2, TotalCount: 2, CreatedAt: day2},
		{QuizID: quizID, RightCount: 0, TotalCount: 2, CreatedAt: day1},
		{QuizID: quizID, RightCount: 1, TotalCount: 2, CreatedAt: day1},
	}, nil)

	got, err := NewResultService(repo).QuizAveragesByTime(ctx, []uuid.UUID{quizID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []model.AveragePoint{
		{Day: "2024-03-01", Average: 0.25},
		{Day: "2024-03-02", Average: 1},
	}, got[0].Points)
}

func TestUserAnalyticsRequireWriteAccess(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	repo := mocks.NewMockResultRepositoryIface(gomock.NewController(t))
	svc := NewResultService(repo)

	_, err := svc.UserAveragesByTime(ctx, f.company, nil, f.membership(f.member, false), f.member)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	_, err = svc.UserQuizAveragesByTime(ctx, f.member, f.company, nil, f.outside)
	assert.ErrorIs(t, err, domain.ErrMemberNotExists)
}
