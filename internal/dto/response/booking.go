package response

import (
	"time"

	"pt-booking/internal/data/entity"
	"pt-booking/pkg/utils"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	TrainerID     *string              `json:"trainer_id,omitempty"`
	ClientID      *string              `json:"client_id,omitempty"`
	ClientName    string               `json:"client_name"`
	ClientContact string               `json:"client_contact,omitempty"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Notes         string               `json:"notes,omitempty"`
	Status        entity.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID.String(),
		TrainerID:     idString(b.TrainerID),
		ClientID:      idString(b.ClientID),
		ClientName:    b.ClientName,
		ClientContact: b.ClientContact,
		Date:          b.Date.Format(utils.DateLayout),
		Time:          b.Time,
		Notes:         b.Notes,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
