package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pt-booking/internal/data/entity"
	"pt-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notification_repo.go -destination=../../mocks/repository/notification_repo.go -package=mocks

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
	LatestUnread(ctx context.Context, recipientID uuid.UUID) (*entity.Notification, error)
	// MarkAllRead flips unread notifications created at or before upTo,
	// so rows that arrive after the list was read stay unread.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID, upTo time.Time) (int64, error)
}

type notificationRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewNotificationRepository(db database.Querier, log *zap.Logger) NotificationRepository {
	return &notificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "notification")),
	}
}

const notificationColumns = `id, recipient_id, notification_type, message, client_name,
		booking_date, to_char(booking_time, 'HH24:MI'), is_read, created_at`

func scanNotification(row rowScanner) (*entity.Notification, error) {
	var n entity.Notification
	err := row.Scan(
		&n.ID,
		&n.RecipientID,
		&n.Type,
		&n.Message,
		&n.ClientName,
		&n.BookingDate,
		&n.BookingTime,
		&n.IsRead,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, recipient_id, notification_type, message, client_name,
		                           booking_date, booking_time, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::text::time, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		n.ID,
		n.RecipientID,
		n.Type,
		n.Message,
		n.ClientName,
		n.BookingDate,
		n.BookingTime,
		n.IsRead,
		n.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create notification",
			zap.Error(err),
			zap.String("recipient_id", n.RecipientID.String()),
			zap.String("type", string(n.Type)),
		)
		return fmt.Errorf("create notification for %s: %w", n.RecipientID, err)
	}

	return nil
}

func (r *notificationRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + `
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, recipientID, limit)
	if err != nil {
		r.log.Error("Failed to find notifications",
			zap.Error(err),
			zap.String("recipient_id", recipientID.String()),
		)
		return nil, fmt.Errorf("find notifications for %s: %w", recipientID, err)
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			r.log.Error("Failed to scan notification row", zap.Error(err))
			return nil, fmt.Errorf("scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notification rows: %w", err)
	}

	return notifications, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE`

	var count int64
	if err := r.db.QueryRow(ctx, query, recipientID).Scan(&count); err != nil {
		r.log.Error("Failed to count unread notifications",
			zap.Error(err),
			zap.String("recipient_id", recipientID.String()),
		)
		return 0, fmt.Errorf("count unread notifications for %s: %w", recipientID, err)
	}

	return count, nil
}

func (r *notificationRepository) LatestUnread(ctx context.Context, recipientID uuid.UUID) (*entity.Notification, error) {
	query := `SELECT ` + notificationColumns + `
		FROM notifications
		WHERE recipient_id = $1 AND is_read = FALSE
		ORDER BY created_at DESC
		LIMIT 1`

	n, err := scanNotification(r.db.QueryRow(ctx, query, recipientID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find latest unread notification",
			zap.Error(err),
			zap.String("recipient_id", recipientID.String()),
		)
		return nil, fmt.Errorf("find latest unread notification for %s: %w", recipientID, err)
	}

	return n, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID, upTo time.Time) (int64, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE recipient_id = $1 AND is_read = FALSE AND created_at <= $2`

	result, err := r.db.Exec(ctx, query, recipientID, upTo)
	if err != nil {
		r.log.Error("Failed to mark notifications read",
			zap.Error(err),
			zap.String("recipient_id", recipientID.String()),
		)
		return 0, fmt.Errorf("mark notifications read for %s: %w", recipientID, err)
	}

	return result.RowsAffected(), nil
}
