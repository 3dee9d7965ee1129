package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationBookingCreated   NotificationType = "booking_created"
	NotificationBookingCancelled NotificationType = "booking_cancelled"
)

// Notification keeps a snapshot of the booking it was raised for, so it
// stays readable after the booking changes or is deleted.
type Notification struct {
	BaseSimple
	RecipientID uuid.UUID        `db:"recipient_id"`
	Type        NotificationType `db:"notification_type"`
	Message     string           `db:"message"`
	ClientName  string           `db:"client_name"`
	BookingDate time.Time        `db:"booking_date"`
	BookingTime string           `db:"booking_time"` // HH:MM
	IsRead      bool             `db:"is_read"`
}
