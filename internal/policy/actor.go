// Package policy holds the booking rules for trainers and clients:
// visibility, ownership, input defaults and the notifications a change
// produces. It does no I/O.
package policy

import (
	"context"
	"errors"
	"fmt"

	"pt-booking/internal/data/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated caller. The only implementations are
// Trainer and Client.
type Actor interface {
	ID() uuid.UUID
	Name() string
	Role() entity.UserRole
	sealed()
}

type Trainer struct {
	UserID      uuid.UUID
	DisplayName string
}

func (t Trainer) ID() uuid.UUID         { return t.UserID }
func (t Trainer) Name() string          { return t.DisplayName }
func (t Trainer) Role() entity.UserRole { return entity.RoleTrainer }
func (Trainer) sealed()                 {}

type Client struct {
	UserID      uuid.UUID
	DisplayName string
	Contact     string
}

func (c Client) ID() uuid.UUID         { return c.UserID }
func (c Client) Name() string          { return c.DisplayName }
func (c Client) Role() entity.UserRole { return entity.RoleClient }
func (Client) sealed()                 {}

var ErrUnknownRole = errors.New("unknown role")

// NewActor resolves the account behind a session into its actor variant.
func NewActor(u *entity.User) (Actor, error) {
	switch u.Role {
	case entity.RoleTrainer:
		return Trainer{UserID: u.ID, DisplayName: u.DisplayName()}, nil
	case entity.RoleClient:
		return Client{UserID: u.ID, DisplayName: u.DisplayName(), Contact: u.Contact()}, nil
	}
	return nil, fmt.Errorf("user %s has role %q: %w", u.ID, u.Role, ErrUnknownRole)
}

// IsTrainer reports whether a is the Trainer variant.
func IsTrainer(a Actor) bool {
	_, ok := a.(Trainer)
	return ok
}

type actorKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok && a != nil
}
