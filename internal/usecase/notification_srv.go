package usecase

import (
	"context"
	"fmt"

	"pt-booking/internal/data/entity"
	"pt-booking/internal/data/repository"
	"pt-booking/internal/dto/response"
	"pt-booking/internal/policy"

	"go.uber.org/zap"
)

// notificationListLimit caps the trainer's notification page
const notificationListLimit = 50

//go:generate mockgen -source=notification_srv.go -destination=../mocks/usecase/notification_srv.go -package=mocks

type NotificationService interface {
	// ListNotifications returns the trainer's newest notifications and marks
	// every unread one as read. Items keep the read state they had before.
	ListNotifications(ctx context.Context, actor policy.Actor) ([]response.NotificationResponse, error)
	// CheckFeed answers the poller. A nil actor gets a zero count.
	CheckFeed(ctx context.Context, actor policy.Actor) (*response.FeedResponse, error)
}

type notificationService struct {
	repo       *repository.Repository
	visibility policy.Visibility
	log        *zap.Logger
}

func NewNotificationService(repo *repository.Repository, visibility policy.Visibility, log *zap.Logger) NotificationService {
	return &notificationService{
		repo:       repo,
		visibility: visibility,
		log:        log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, actor policy.Actor) ([]response.NotificationResponse, error) {
	if !policy.IsTrainer(actor) {
		return nil, ErrTrainerOnly
	}

	notifications, err := s.repo.Notification.FindByRecipient(ctx, actor.ID(), notificationListLimit)
	if err != nil {
		s.log.Error("Failed to list notifications", zap.Error(err), zap.String("trainer_id", actor.ID().String()))
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	// notifications newer than the first listed row stay unread
	var marked int64
	if len(notifications) > 0 {
		marked, err = s.repo.Notification.MarkAllRead(ctx, actor.ID(), notifications[0].CreatedAt)
		if err != nil {
			s.log.Error("Failed to mark notifications read", zap.Error(err), zap.String("trainer_id", actor.ID().String()))
			return nil, fmt.Errorf("mark notifications read: %w", err)
		}
	}

	s.log.Debug("Notifications viewed",
		zap.String("trainer_id", actor.ID().String()),
		zap.Int("count", len(notifications)),
		zap.Int64("marked_read", marked),
	)

	items := make([]response.NotificationResponse, len(notifications))
	for i, n := range notifications {
		items[i] = response.NotificationToResponse(n)
	}
	return items, nil
}

func (s *notificationService) CheckFeed(ctx context.Context, actor policy.Actor) (*response.FeedResponse, error) {
	if actor == nil {
		return &response.FeedResponse{}, nil
	}

	pending := entity.BookingStatusPending
	filter := repository.BookingFilter{
		Scope:  policy.ScopeFor(actor, s.visibility),
		Status: &pending,
	}

	var in policy.FeedInput
	var err error

	if in.PendingCount, err = s.repo.Booking.Count(ctx, filter); err != nil {
		return nil, fmt.Errorf("count pending bookings: %w", err)
	}
	if in.LatestPending, err = s.repo.Booking.LatestPending(ctx, filter.Scope); err != nil {
		return nil, fmt.Errorf("latest pending booking: %w", err)
	}

	if policy.IsTrainer(actor) {
		if in.UnreadCount, err = s.repo.Notification.CountUnread(ctx, actor.ID()); err != nil {
			return nil, fmt.Errorf("count unread notifications: %w", err)
		}
		if in.LatestUnread, err = s.repo.Notification.LatestUnread(ctx, actor.ID()); err != nil {
			return nil, fmt.Errorf("latest unread notification: %w", err)
		}
	}

	feed := policy.ResolveFeed(actor, in)

	resp := &response.FeedResponse{Count: feed.Count}
	switch {
	case feed.Notification != nil:
		resp.Latest = response.FeedItemFromNotification(feed.Notification)
	case feed.Booking != nil:
		resp.Latest = response.FeedItemFromBooking(feed.Booking)
	}
	return resp, nil
}
