package usecase

import (
	"context"
	"fmt"
	"testing"

	"pt-booking/internal/data/entity"
	"pt-booking/internal/data/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func repositoryNotFound() error {
	return fmt.Errorf("session: %w", repository.ErrNotFound)
}

func TestListClients_TrainerOnly(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()
	svc := NewUserService(f.users, zap.NewNop())

	_, err := svc.ListClients(context.Background(), actorFor(t, clientUser()))
	assert.ErrorIs(t, err, ErrTrainerOnly)

	c := clientUser()
	f.users.EXPECT().ListByRole(gomock.Any(), entity.RoleClient).Return([]*entity.User{c}, nil)

	got, err := svc.ListClients(context.Background(), actorFor(t, trainerUser()))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Aoife Byrne", got[0].DisplayName)
}

func TestListTrainers(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()
	svc := NewUserService(f.users, zap.NewNop())

	f.users.EXPECT().ListByRole(gomock.Any(), entity.RoleTrainer).Return(nil, nil)

	got, err := svc.ListTrainers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestGetProfile(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Finish()
	svc := NewUserService(f.users, zap.NewNop())

	u := trainerUser()
	f.users.EXPECT().FindByID(gomock.Any(), u.ID).Return(u, nil)
	got, err := svc.GetProfile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sean Kelly", got.DisplayName)

	missing := uuid.New()
	f.users.EXPECT().FindByID(gomock.Any(), missing).Return(nil, nil)
	_, err = svc.GetProfile(context.Background(), missing)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
