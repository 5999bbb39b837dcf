// internal/repository/notification.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationRepositoryIface interface {
	Create(ctx context.Context, notification *model.Notification) error
	CreateIfAbsent(ctx context.Context, notification *model.Notification) (bool, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}
	return nil
}

// CreateIfAbsent inserts the notification unless one with the same dedupe key
// exists. It reports whether a row was written.
func (r *NotificationRepository) CreateIfAbsent(ctx context.Context, notification *model.Notification) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "dedupe_key"}}, DoNothing: true}).
		Create(notification)
	if result.Error != nil {
		return false, fmt.Errorf("creating deduplicated notification: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *NotificationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Notification, error) {
	var notifications []*model.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	return notifications, nil
}

func (r *NotificationRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*model.Notification, error) {
	var notification model.Notification
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("finding notification: %w", err)
	}
	return &notification, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	return nil
}
