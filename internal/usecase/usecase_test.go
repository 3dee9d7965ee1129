package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pt-booking/internal/data/entity"
	"pt-booking/internal/data/repository"
	repomocks "pt-booking/internal/mocks/repository"
	"pt-booking/internal/policy"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	ctrl          *gomock.Controller
	users         *repomocks.MockUserRepository
	sessions      *repomocks.MockSessionRepository
	bookings      *repomocks.MockBookingRepository
	notifications *repomocks.MockNotificationRepository
	tx            *repomocks.MockTransactor
	repo          *repository.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		ctrl:          ctrl,
		users:         repomocks.NewMockUserRepository(ctrl),
		sessions:      repomocks.NewMockSessionRepository(ctrl),
		bookings:      repomocks.NewMockBookingRepository(ctrl),
		notifications: repomocks.NewMockNotificationRepository(ctrl),
		tx:            repomocks.NewMockTransactor(ctrl),
	}
	f.repo = &repository.Repository{
		User:         f.users,
		Session:      f.sessions,
		Booking:      f.bookings,
		Notification: f.notifications,
	}

	// the transaction runs against the same mocks
	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*repository.Repository) error) error {
			return fn(f.repo)
		}).AnyTimes()

	return f
}

func ptr[T any](v T) *T { return &v }

func requireFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *policy.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr.Fields
}

func trainerUser() *entity.User {
	return &entity.User{
		Base:      entity.Base{ID: uuid.New()},
		Username:  "sean",
		Email:     "sean@example.ie",
		FirstName: "Sean",
		LastName:  "Kelly",
		Role:      entity.RoleTrainer,
		IsActive:  true,
	}
}

func clientUser() *entity.User {
	phone := "0871234567"
	return &entity.User{
		Base:      entity.Base{ID: uuid.New()},
		Username:  "aoife",
		Email:     "aoife@example.ie",
		FirstName: "Aoife",
		LastName:  "Byrne",
		Phone:     &phone,
		Role:      entity.RoleClient,
		IsActive:  true,
	}
}

func actorFor(t *testing.T, u *entity.User) policy.Actor {
	t.Helper()
	a, err := policy.NewActor(u)
	require.NoError(t, err)
	return a
}
