package response

import (
	"time"

	"pt-booking/internal/data/entity"
	"pt-booking/pkg/utils"
)

type NotificationResponse struct {
	ID          string                  `json:"id"`
	Type        entity.NotificationType `json:"notification_type"`
	Message     string                  `json:"message"`
	ClientName  string                  `json:"client_name"`
	BookingDate string                  `json:"booking_date"`
	BookingTime string                  `json:"booking_time"`
	IsRead      bool                    `json:"is_read"`
	CreatedAt   time.Time               `json:"created_at"`
}

func NotificationToResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID.String(),
		Type:        n.Type,
		Message:     n.Message,
		ClientName:  n.ClientName,
		BookingDate: n.BookingDate.Format(utils.DateLayout),
		BookingTime: n.BookingTime,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
	}
}

// FeedResponse is what the client-side poller receives.
type FeedResponse struct {
	Count  int64     `json:"count"`
	Latest *FeedItem `json:"latest,omitempty"`
}

// FeedItem summarises the newest thing worth showing. Status is set only
// when the item is a booking.
type FeedItem struct {
	ClientName string                `json:"client_name"`
	Date       string                `json:"date"`
	Time       string                `json:"time"`
	Status     *entity.BookingStatus `json:"status,omitempty"`
}

func FeedItemFromNotification(n *entity.Notification) *FeedItem {
	return &FeedItem{
		ClientName: n.ClientName,
		Date:       n.BookingDate.Format(utils.DateLayout),
		Time:       n.BookingTime,
	}
}

func FeedItemFromBooking(b *entity.Booking) *FeedItem {
	status := b.Status
	return &FeedItem{
		ClientName: b.ClientName,
		Date:       b.Date.Format(utils.DateLayout),
		Time:       b.Time,
		Status:     &status,
	}
}
