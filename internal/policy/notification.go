package policy

import (
	"fmt"
	"time"

	"pt-booking/internal/data/entity"
	"pt-booking/pkg/utils"
)

// CancellationNotice derives the notification a cancellation produces.
// before is the booking as it was prior to the cancellation or deletion.
// Only clients notify, only an assigned trainer is notified, and a booking
// that was already cancelled does not notify twice.
func CancellationNotice(a Actor, before *entity.Booking, now time.Time) (*entity.Notification, bool) {
	if _, ok := a.(Client); !ok {
		return nil, false
	}
	if before.TrainerID == nil || before.IsCancelled() {
		return nil, false
	}

	return &entity.Notification{
		BaseSimple:  entity.NewBaseSimple(now),
		RecipientID: *before.TrainerID,
		Type:        entity.NotificationBookingCancelled,
		Message: fmt.Sprintf("%s cancelled the session on %s at %s",
			before.ClientName, before.Date.Format(utils.DateLayout), before.Time),
		ClientName:  before.ClientName,
		BookingDate: before.Date,
		BookingTime: before.Time,
	}, true
}
