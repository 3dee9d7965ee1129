package repository

import (
	"errors"

	"pt-booking/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned by Update and Delete when no row matched.
var ErrNotFound = errors.New("not found")

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Booking      BookingRepository
	Notification NotificationRepository
}

func NewRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Notification: NewNotificationRepository(db, log),
	}
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}
