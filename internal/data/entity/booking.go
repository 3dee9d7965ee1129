package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is one scheduled training session. TrainerID and ClientID are
// optional; ClientName is always populated before the row is written.
type Booking struct {
	BaseNoDelete
	TrainerID     *uuid.UUID    `db:"trainer_id"`
	ClientID      *uuid.UUID    `db:"client_id"`
	ClientName    string        `db:"client_name"`
	ClientContact string        `db:"client_contact"`
	Date          time.Time     `db:"date"`
	Time          string        `db:"time"` // HH:MM
	Notes         string        `db:"notes"`
	Status        BookingStatus `db:"status"`
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}
