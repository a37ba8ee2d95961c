package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/marqueai/internal/models"
	"github.com/BruksfildServices01/marqueai/internal/notify"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) CreateNotifications(ctx context.Context, items []models.Notification) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *NotificationGormRepository) GetSettings(ctx context.Context, profileID uuid.UUID) (*models.BarbershopSettings, error) {
	var s models.BarbershopSettings
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *NotificationGormRepository) ListNotifications(
	ctx context.Context,
	profileID uuid.UUID,
	unreadOnly bool,
	limit int,
) ([]models.Notification, error) {

	q := r.db.WithContext(ctx).Where("profile_id = ?", profileID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var out []models.Notification
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *NotificationGormRepository) MarkRead(ctx context.Context, profileID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND profile_id = ?", id, profileID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

var _ notify.Repository = (*NotificationGormRepository)(nil)
