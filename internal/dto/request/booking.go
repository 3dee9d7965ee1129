package request

// CreateBookingRequest is the booking form. client_id is honoured for
// trainers only, trainer_id for clients only; status is ignored for clients.
type CreateBookingRequest struct {
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string  `json:"time" validate:"required,clock"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled"`
	Notes         string  `json:"notes" validate:"max=2000"`
	ClientID      *string `json:"client_id,omitempty" validate:"omitempty,optional_uuid"`
	ClientName    string  `json:"client_name" validate:"max=200"`
	ClientContact string  `json:"client_contact" validate:"omitempty,contact"`
	TrainerID     *string `json:"trainer_id,omitempty" validate:"omitempty,optional_uuid"`
}

// UpdateBookingRequest only touches the fields present in the body. A
// blank client_contact clears it; a blank client_id or trainer_id keeps
// the current assignment.
type UpdateBookingRequest struct {
	Date          *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time          *string `json:"time,omitempty" validate:"omitempty,clock"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
	ClientID      *string `json:"client_id,omitempty" validate:"omitempty,optional_uuid"`
	ClientName    *string `json:"client_name,omitempty" validate:"omitempty,max=200"`
	ClientContact *string `json:"client_contact,omitempty" validate:"omitempty,contact"`
	TrainerID     *string `json:"trainer_id,omitempty" validate:"omitempty,optional_uuid"`
}

type ListBookingsRequest struct {
	PaginatedRequest
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled"`
}
