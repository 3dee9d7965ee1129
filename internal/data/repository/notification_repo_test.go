package repository

import (
	"context"
	"testing"
	"time"

	"pt-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var notificationRowColumns = []string{
	"id", "recipient_id", "notification_type", "message", "client_name",
	"booking_date", "booking_time", "is_read", "created_at",
}

func sampleNotification(recipient uuid.UUID) *entity.Notification {
	return &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
		RecipientID: recipient,
		Type:        entity.NotificationBookingCancelled,
		Message:     "Aoife Byrne cancelled the session on 2026-03-14 at 09:30",
		ClientName:  "Aoife Byrne",
		BookingDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		BookingTime: "09:30",
	}
}

func notificationRow(rows *pgxmock.Rows, n *entity.Notification) *pgxmock.Rows {
	return rows.AddRow(n.ID, n.RecipientID, n.Type, n.Message, n.ClientName,
		n.BookingDate, n.BookingTime, n.IsRead, n.CreatedAt)
}

func TestNotificationRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewNotificationRepository(mock, zap.NewNop())
	n := sampleNotification(uuid.New())

	mock.ExpectExec(`INSERT INTO notifications`).
		WithArgs(n.ID, n.RecipientID, n.Type, n.Message, n.ClientName,
			n.BookingDate, n.BookingTime, n.IsRead, n.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), n))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_FindByRecipient(t *testing.T) {
	mock := newMockPool(t)
	repo := NewNotificationRepository(mock, zap.NewNop())
	trainer := uuid.New()
	first := sampleNotification(trainer)
	second := sampleNotification(trainer)
	second.IsRead = true

	rows := pgxmock.NewRows(notificationRowColumns)
	notificationRow(rows, first)
	notificationRow(rows, second)

	mock.ExpectQuery(`WHERE recipient_id = \$1`).
		WithArgs(trainer, 50).
		WillReturnRows(rows)

	got, err := repo.FindByRecipient(context.Background(), trainer, 50)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Notification{first, second}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_UnreadCountAndLatest(t *testing.T) {
	mock := newMockPool(t)
	repo := NewNotificationRepository(mock, zap.NewNop())
	trainer := uuid.New()
	n := sampleNotification(trainer)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM notifications WHERE recipient_id = \$1 AND is_read = FALSE`).
		WithArgs(trainer).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery(`is_read = FALSE`).
		WithArgs(trainer).
		WillReturnRows(notificationRow(pgxmock.NewRows(notificationRowColumns), n))
	mock.ExpectQuery(`is_read = FALSE`).
		WithArgs(trainer).
		WillReturnRows(pgxmock.NewRows(notificationRowColumns))

	count, err := repo.CountUnread(context.Background(), trainer)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	latest, err := repo.LatestUnread(context.Background(), trainer)
	require.NoError(t, err)
	assert.Equal(t, n, latest)

	latest, err = repo.LatestUnread(context.Background(), trainer)
	require.NoError(t, err)
	assert.Nil(t, latest)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkAllReadBoundedByListedRows(t *testing.T) {
	mock := newMockPool(t)
	repo := NewNotificationRepository(mock, zap.NewNop())
	trainer := uuid.New()
	upTo := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE notifications SET is_read = TRUE WHERE recipient_id = \$1 AND is_read = FALSE AND created_at <= \$2`).
		WithArgs(trainer, upTo).
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	marked, err := repo.MarkAllRead(context.Background(), trainer, upTo)
	require.NoError(t, err)
	assert.Equal(t, int64(3), marked)
	assert.NoError(t, mock.ExpectationsWereMet())
}
