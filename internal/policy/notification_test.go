package policy

import (
	"testing"

	"pt-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignedBooking(trainerID uuid.UUID) *entity.Booking {
	return &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		TrainerID:    &trainerID,
		ClientName:   "Aoife Byrne",
		Date:         day,
		Time:         clock,
		Status:       entity.BookingStatusConfirmed,
	}
}

func TestCancellationNotice_ClientCancels(t *testing.T) {
	trainerID := uuid.New()
	client := Client{UserID: uuid.New(), DisplayName: "Aoife Byrne"}
	before := assignedBooking(trainerID)

	n, ok := CancellationNotice(client, before, now)
	require.True(t, ok)
	assert.Equal(t, trainerID, n.RecipientID)
	assert.Equal(t, entity.NotificationBookingCancelled, n.Type)
	assert.Equal(t, "Aoife Byrne cancelled the session on 2026-03-14 at 09:30", n.Message)
	assert.Equal(t, "Aoife Byrne", n.ClientName)
	assert.Equal(t, day, n.BookingDate)
	assert.Equal(t, clock, n.BookingTime)
	assert.False(t, n.IsRead)
	assert.Equal(t, now, n.CreatedAt)
}

func TestCancellationNotice_TrainerNeverNotifies(t *testing.T) {
	trainer := Trainer{UserID: uuid.New()}
	_, ok := CancellationNotice(trainer, assignedBooking(trainer.UserID), now)
	assert.False(t, ok)
}

func TestCancellationNotice_NoAssignedTrainer(t *testing.T) {
	client := Client{UserID: uuid.New(), DisplayName: "Aoife Byrne"}
	b := assignedBooking(uuid.New())
	b.TrainerID = nil

	_, ok := CancellationNotice(client, b, now)
	assert.False(t, ok)
}

func TestCancellationNotice_AlreadyCancelled(t *testing.T) {
	client := Client{UserID: uuid.New(), DisplayName: "Aoife Byrne"}
	b := assignedBooking(uuid.New())
	b.Status = entity.BookingStatusCancelled

	_, ok := CancellationNotice(client, b, now)
	assert.False(t, ok)
}
