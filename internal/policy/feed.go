package policy

import "pt-booking/internal/data/entity"

// FeedInput is what the store reports for one actor's poll.
// Unread fields are only filled for trainers.
type FeedInput struct {
	UnreadCount   int64
	PendingCount  int64
	LatestUnread  *entity.Notification
	LatestPending *entity.Booking
}

// Feed is the resolved poll result. At most one of Notification and
// Booking is set.
type Feed struct {
	Count        int64
	Notification *entity.Notification
	Booking      *entity.Booking
}

// ResolveFeed combines the counts for a. A trainer's count adds unread
// notifications to pending bookings without removing overlap, and an
// unread notification outranks a pending booking as the latest item.
func ResolveFeed(a Actor, in FeedInput) Feed {
	if a == nil {
		return Feed{}
	}

	if _, ok := a.(Trainer); ok {
		f := Feed{Count: in.UnreadCount + in.PendingCount}
		if in.LatestUnread != nil {
			f.Notification = in.LatestUnread
		} else {
			f.Booking = in.LatestPending
		}
		return f
	}

	return Feed{Count: in.PendingCount, Booking: in.LatestPending}
}
