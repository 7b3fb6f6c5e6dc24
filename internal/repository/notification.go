package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/ciudad_activa/internal/models"
	"github.com/shenikar/ciudad_activa/internal/service"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) service.NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create сохраняет уведомление
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (incident_id, emergency_id, type, title, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, n.IncidentID, n.EmergencyID, n.Type, n.Title, n.Message).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// List возвращает последние уведомления; unreadOnly оставляет только непрочитанные
func (r *NotificationRepository) List(ctx context.Context, limit int, unreadOnly bool) ([]*models.Notification, error) {
	query := `
		SELECT id, incident_id, emergency_id, type, title, message, created_at, read_at
		FROM notifications
		WHERE ($1::boolean = FALSE OR read_at IS NULL)
		ORDER BY created_at DESC, id DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, unreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]*models.Notification, 0)
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(&n.ID, &n.IncidentID, &n.EmergencyID, &n.Type, &n.Title, &n.Message, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return notifications, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE read_at IS NULL;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkAsRead проставляет read_at, если он еще не задан
func (r *NotificationRepository) MarkAsRead(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE notifications SET read_at = COALESCE(read_at, NOW()) WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("notification with id %d: %w", id, models.ErrNotFound)
	}
	return nil
}

// MarkAllAsRead помечает все непрочитанные уведомления и возвращает их число
func (r *NotificationRepository) MarkAllAsRead(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE notifications SET read_at = NOW() WHERE read_at IS NULL;`)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications as read: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
