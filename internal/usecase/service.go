package usecase

import (
	"time"

	"pt-booking/internal/data/repository"
	"pt-booking/internal/policy"
	"pt-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Booking      BookingService
	Notification NotificationService
}

func NewService(
	repo *repository.Repository,
	tx repository.Transactor,
	visibility policy.Visibility,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		User:         NewUserService(repo.User, log),
		Booking:      NewBookingService(repo, tx, visibility, log),
		Notification: NewNotificationService(repo, visibility, log),
	}
}

// clock is swapped in tests
type clock func() time.Time
