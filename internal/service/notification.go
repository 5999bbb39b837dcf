// internal/service/notification.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Ar-Dante/Quiz-platform/internal/access"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/repository"
	"github.com/google/uuid"
)

type NotificationService struct {
	repo repository.NotificationRepositoryIface
}

func NewNotificationService(repo repository.NotificationRepositoryIface) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) List(ctx context.Context, userID, caller uuid.UUID) ([]*model.Notification, error) {
	if err := access.Self(caller, userID); err != nil {
		return nil, err
	}
	return s.repo.FindByUser(ctx, userID)
}

// MarkRead flags one of the user's notifications. Notifications belonging to
// someone else are reported as missing.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID, caller uuid.UUID) error {
	if err := access.Self(caller, userID); err != nil {
		return err
	}
	n, err := s.repo.FindByIDAndUser(ctx, notificationID, userID)
	if err != nil {
		return err
	}
	if n.IsRead {
		return nil
	}
	return s.repo.MarkRead(ctx, n.ID)
}

// NotifyQuizCreated tells every member a new quiz is open.
func (s *NotificationService) NotifyQuizCreated(ctx context.Context, members []*model.Membership, quiz *model.Quiz) error {
	for _, m := range members {
		quizID := quiz.ID
		n := &model.Notification{
			UserID: m.UserID,
			QuizID: &quizID,
			Text:   fmt.Sprintf("Quiz %q was created, you can submit it!", quiz.Name),
		}
		if err := s.repo.Create(ctx, n); err != nil {
			return fmt.Errorf("notifying %s: %w", m.UserID, err)
		}
	}
	return nil
}

// ReminderKey identifies the single reminder allowed per user, quiz and UTC day.
func ReminderKey(userID, quizID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("reminder:%s:%s:%s", userID, quizID, day.UTC().Format(dayLayout))
}

// RemindQuiz writes a retake reminder unless one already exists for the day.
// It reports whether a notification was written.
func (s *NotificationService) RemindQuiz(ctx context.Context, userID uuid.UUID, quiz *model.Quiz, day time.Time) (bool, error) {
	key := ReminderKey(userID, quiz.ID, day)
	quizID := quiz.ID
	return s.repo.CreateIfAbsent(ctx, &model.Notification{
		UserID:    userID,
		QuizID:    &quizID,
		Text:      fmt.Sprintf("It's time to retake quiz %q", quiz.Name),
		DedupeKey: &key,
	})
}
