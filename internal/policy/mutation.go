package policy

import (
	"strings"
	"time"

	"pt-booking/internal/data/entity"
	"pt-booking/pkg/utils"
)

// Draft is a parsed create or edit submission. Nil fields were not
// submitted. Client is the registered client a trainer picked, Trainer
// the trainer a client picked; both are already loaded and checked.
type Draft struct {
	Date          *time.Time
	Time          *string
	Status        *entity.BookingStatus
	Notes         *string
	ClientName    *string
	ClientContact *string
	Client        *entity.User
	Trainer       *entity.User
}

const msgClientRequired = "Select a registered client or enter a client name"

// NewBooking applies the creation defaults for a and checks the result.
func NewBooking(a Actor, d Draft, now time.Time) (*entity.Booking, error) {
	if d.Date == nil || d.Time == nil {
		fields := map[string]string{}
		if d.Date == nil {
			fields["date"] = "This field is required"
		}
		if d.Time == nil {
			fields["time"] = "This field is required"
		}
		return nil, &ValidationError{Fields: fields}
	}

	b := &entity.Booking{
		BaseNoDelete: entity.NewBaseNoDelete(now),
		Date:         *d.Date,
		Time:         *d.Time,
		Status:       entity.BookingStatusPending,
	}
	if d.Notes != nil {
		b.Notes = strings.TrimSpace(*d.Notes)
	}

	switch actor := a.(type) {
	case Trainer:
		id := actor.UserID
		b.TrainerID = &id
		if d.Status != nil {
			b.Status = *d.Status
		}
		applyClientSelection(b, d)
	case Client:
		id := actor.UserID
		b.ClientID = &id
		b.ClientName = actor.DisplayName
		b.ClientContact = utils.NormalizeContact(actor.Contact)
		if d.ClientContact != nil && strings.TrimSpace(*d.ClientContact) != "" {
			b.ClientContact = utils.NormalizeContact(*d.ClientContact)
		}
		if d.Trainer != nil {
			tid := d.Trainer.ID
			b.TrainerID = &tid
		}
	}

	if strings.TrimSpace(b.ClientName) == "" {
		return nil, newValidationError("client_name", msgClientRequired)
	}
	return b, nil
}

// ApplyEdit returns a copy of current with the submitted fields applied.
// Identity and created_at are carried over untouched.
func ApplyEdit(a Actor, current *entity.Booking, d Draft, now time.Time) (*entity.Booking, error) {
	b := *current
	b.Touch(now)

	if d.Date != nil {
		b.Date = *d.Date
	}
	if d.Time != nil {
		b.Time = *d.Time
	}
	if d.Notes != nil {
		b.Notes = strings.TrimSpace(*d.Notes)
	}

	switch a.(type) {
	case Trainer:
		if d.Status != nil {
			b.Status = *d.Status
		}
		applyClientSelection(&b, d)
	case Client:
		// status and client identity are not the client's to change
		if d.ClientContact != nil {
			b.ClientContact = utils.NormalizeContact(*d.ClientContact)
		}
		if d.Trainer != nil {
			tid := d.Trainer.ID
			b.TrainerID = &tid
		}
	}

	if strings.TrimSpace(b.ClientName) == "" {
		return nil, newValidationError("client_name", msgClientRequired)
	}
	return &b, nil
}

// applyClientSelection fills the client fields for a trainer submission.
// A picked account provides name and contact unless overridden.
func applyClientSelection(b *entity.Booking, d Draft) {
	name := ""
	if d.ClientName != nil {
		name = strings.TrimSpace(*d.ClientName)
	}
	contact := ""
	contactGiven := d.ClientContact != nil
	if contactGiven {
		contact = utils.NormalizeContact(*d.ClientContact)
	}

	if d.Client != nil {
		cid := d.Client.ID
		b.ClientID = &cid
		b.ClientName = d.Client.DisplayName()
		b.ClientContact = utils.NormalizeContact(d.Client.Contact())
		if name != "" {
			b.ClientName = name
		}
		if contact != "" {
			b.ClientContact = contact
		}
		return
	}

	if d.ClientName != nil {
		b.ClientName = name
	}
	if contactGiven {
		b.ClientContact = contact
	}
}

// Cancel returns a cancelled copy of b.
func Cancel(b *entity.Booking, now time.Time) *entity.Booking {
	c := *b
	c.Status = entity.BookingStatusCancelled
	c.Touch(now)
	return &c
}

// IsCancellation reports a transition into the cancelled state.
func IsCancellation(before, after *entity.Booking) bool {
	return !before.IsCancelled() && after.IsCancelled()
}
