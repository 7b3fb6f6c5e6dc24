package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/shenikar/ciudad_activa/internal/webhook"
	"github.com/sirupsen/logrus"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

type notificationService struct {
	repo      NotificationRepository
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
}

func NewNotificationService(repo NotificationRepository, publisher webhook.WebhookPublisher, logger *logrus.Logger) NotificationService {
	return &notificationService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Notify сохраняет уведомление и ставит его в очередь вебхуков.
// Ошибка публикации только логируется: строка уже записана.
func (s *notificationService) Notify(ctx context.Context, n *models.Notification) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "Notify",
		"type":    n.Type,
	})

	if err := s.repo.Create(ctx, n); err != nil {
		log.WithError(err).Error("Failed to create notification in repository")
		return fmt.Errorf("service: could not create notification: %w", err)
	}
	log = log.WithField("notification_id", n.ID)
	log.Info("Notification created")

	event := webhook.WebhookEvent{
		Event:        webhook.EventNotificationCreated,
		Notification: n,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish notification webhook")
	}
	return nil
}

func (s *notificationService) ListNotifications(ctx context.Context, limit int) ([]*models.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}

	notifications, err := s.repo.List(ctx, limit, false)
	if err != nil {
		s.logger.WithField("method", "ListNotifications").WithError(err).Error("Failed to list notifications")
		return nil, fmt.Errorf("service: could not list notifications: %w", err)
	}
	return notifications, nil
}

// ListUnread возвращает непрочитанные уведомления и их общее число
func (s *notificationService) ListUnread(ctx context.Context) ([]*models.Notification, int, error) {
	log := s.logger.WithField("method", "ListUnread")

	notifications, err := s.repo.List(ctx, maxNotificationLimit, true)
	if err != nil {
		log.WithError(err).Error("Failed to list unread notifications")
		return nil, 0, fmt.Errorf("service: could not list unread notifications: %w", err)
	}
	count, err := s.repo.CountUnread(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count unread notifications")
		return nil, 0, fmt.Errorf("service: could not count unread notifications: %w", err)
	}
	return notifications, count, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id int64) error {
	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		s.logger.WithField("notification_id", id).WithError(err).Warn("Failed to mark notification as read")
		return fmt.Errorf("service: could not mark notification as read: %w", err)
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context) (int64, error) {
	updated, err := s.repo.MarkAllAsRead(ctx)
	if err != nil {
		s.logger.WithField("method", "MarkAllAsRead").WithError(err).Error("Failed to mark all notifications as read")
		return 0, fmt.Errorf("service: could not mark all notifications as read: %w", err)
	}
	s.logger.WithField("updated", updated).Info("Notifications marked as read")
	return updated, nil
}
