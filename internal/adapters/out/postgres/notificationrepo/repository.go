// Package notificationrepo persists the panel's notification feed through GORM.
package notificationrepo

import (
	"context"
	"time"

	"storepanel/internal/core/domain/model/kernel"
	"storepanel/internal/core/domain/model/notification"
	"storepanel/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationDTO represents the database structure for feed entries.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Message   string
	Type      string
	RelatedID *uuid.UUID `gorm:"type:uuid"`
	Read      bool       `gorm:"index"`
	Timestamp time.Time  `gorm:"index"`
}

// TableName overrides GORM's default naming to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add saves a new notification.
func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	dto, err := fromDomain(n)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAll retrieves the feed, newest first.
func (r *GormNotificationRepository) GetAll(ctx context.Context) ([]*notification.Notification, error) {
	var dtos []NotificationDTO
	if err := r.db.WithContext(ctx).Order("timestamp DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	feed := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		feed = append(feed, n)
	}
	return feed, nil
}

// MarkRead marks a single notification as read.
func (r *GormNotificationRepository) MarkRead(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", id.Bytes()).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}
	return nil
}

// MarkAllRead marks every notification as read.
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("read = ?", false).
		Update("read", true).Error
}

func fromDomain(n *notification.Notification) (NotificationDTO, error) {
	if err := n.Type.Validate(); err != nil {
		return NotificationDTO{}, err
	}

	var relatedID *uuid.UUID
	if n.RelatedID != nil {
		raw := n.RelatedID.Bytes()
		relatedID = &raw
	}

	return NotificationDTO{
		ID:        n.ID.Bytes(),
		Message:   n.Message,
		Type:      n.Type.String(),
		RelatedID: relatedID,
		Read:      n.Read,
		Timestamp: n.Timestamp,
	}, nil
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	notifType, err := notification.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	var relatedID *kernel.UUID
	if dto.RelatedID != nil {
		rID, relErr := kernel.UUIDFromBytes((*dto.RelatedID)[:])
		if relErr != nil {
			return nil, relErr
		}
		relatedID = &rID
	}

	return &notification.Notification{
		ID:        id,
		Message:   dto.Message,
		Type:      notifType,
		RelatedID: relatedID,
		Read:      dto.Read,
		Timestamp: dto.Timestamp,
	}, nil
}
