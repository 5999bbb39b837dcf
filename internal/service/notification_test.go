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

func TestReminderKeyUsesUTCDay(t *testing.T) {
	user, quiz := uuid.New(), uuid.New()
	local := time.FixedZone("UTC+3", 3*60*60)
	at := time.Date(2024, 5, 2, 1, 30, 0, 0, local)

	assert.Equal(t, "reminder:"+user.String()+":"+quiz.String()+":2024-05-01", ReminderKey(user, quiz, at))
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()
	id := uuid.New()

	t.Run("someone else", func(t *testing.T) {
		repo := mocks.NewMockNotificationRepositoryIface(gomock.NewController(t))
		err := NewNotificationService(repo).MarkRead(ctx, id, user, uuid.New())
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("missing", func(t *testing.T) {
		repo := mocks.NewMockNotificationRepositoryIface(gomock.NewController(t))
		repo.EXPECT().FindByIDAndUser(ctx, id, user).Return(nil, domain.ErrNotificationNotFound)

		err := NewNotificationService(repo).MarkRead(ctx, id, user, user)
		assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
	})

	t.Run("already read", func(t *testing.T) {
		repo := mocks.NewMockNotificationRepositoryIface(gomock.NewController(t))
		repo.EXPECT().FindByIDAndUser(ctx, id, user).Return(&model.Notification{ID: id, UserID: user, IsRead: true}, nil)

		assert.NoError(t, NewNotificationService(repo).MarkRead(ctx, id, user, user))
	})

	t.Run("unread", func(t *testing.T) {
		repo := mocks.NewMockNotificationRepositoryIface(gomock.NewController(t))
		repo.EXPECT().FindByIDAndUser(ctx, id, user).Return(&model.Notification{ID: id, UserID: user}, nil)
		repo.EXPECT().MarkRead(ctx, id).Return(nil)

		assert.NoError(t, NewNotificationService(repo).MarkRead(ctx, id, user, user))
	})
}

func TestNotifyQuizCreated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	quiz := &model.Quiz{ID: uuid.New(), Name: "History"}
	repo := mocks.NewMockNotificationRepositoryIface(gomock.NewController(t))

	var got []*model.Notification
	repo.EXPECT().Create(ctx, gomock.Any()).Times(2).DoAndReturn(func(_ context.Context, n *model.Notification) error {
		got = append(got, n)
		return nil
	})

	members := []*model.Membership{f.membership(f.member, false), f.membership(f.admin, true)}
	require.NoError(t, NewNotificationService(repo).NotifyQuizCreated(ctx, members, quiz))
	require.Len(t, got, 2)
	assert.Equal(t, f.admin, got[1].UserID)
	assert.Equal(t, quiz.ID, *got[0].QuizID)
	assert.Nil(t, got[0].DedupeKey)
}
