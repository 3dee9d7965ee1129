package usecase

import (
	"context"
	"fmt"

	"pt-booking/internal/data/entity"
	"pt-booking/internal/data/repository"
	"pt-booking/internal/dto/response"
	"pt-booking/internal/policy"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=user_srv.go -destination=../mocks/usecase/user_srv.go -package=mocks

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	// ListTrainers feeds the trainer picker on a client's booking form
	ListTrainers(ctx context.Context) ([]response.UserResponse, error)
	// ListClients feeds the client picker on a trainer's booking form
	ListClients(ctx context.Context, actor policy.Actor) ([]response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) ListTrainers(ctx context.Context) ([]response.UserResponse, error) {
	return us.listRole(ctx, entity.RoleTrainer)
}

func (us *userService) ListClients(ctx context.Context, actor policy.Actor) ([]response.UserResponse, error) {
	if !policy.IsTrainer(actor) {
		return nil, ErrTrainerOnly
	}
	return us.listRole(ctx, entity.RoleClient)
}

func (us *userService) listRole(ctx context.Context, role entity.UserRole) ([]response.UserResponse, error) {
	users, err := us.userRepo.ListByRole(ctx, role)
	if err != nil {
		us.log.Error("Failed to list users", zap.Error(err), zap.String("role", string(role)))
		return nil, fmt.Errorf("list %ss: %w", role, err)
	}

	items := make([]response.UserResponse, len(users))
	for i, u := range users {
		items[i] = response.UserToResponse(u)
	}
	return items, nil
}
