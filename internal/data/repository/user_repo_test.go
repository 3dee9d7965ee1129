package repository

import (
	"context"
	"testing"
	"time"

	"pt-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var userRowColumns = []string{
	"id", "username", "email", "password", "first_name", "last_name", "phone", "role",
	"is_active", "created_at", "updated_at", "deleted_at",
}

func userRow(rows *pgxmock.Rows, u *entity.User) *pgxmock.Rows {
	return rows.AddRow(u.ID, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName,
		u.Phone, u.Role, u.IsActive, u.CreatedAt, u.UpdatedAt, u.DeletedAt)
}

func sampleUser(role entity.UserRole) *entity.User {
	phone := "0871234567"
	ts := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)
	return &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: ts, UpdatedAt: ts},
		Username:     "aoife",
		Email:        "aoife@example.ie",
		PasswordHash: "$2a$04$hash",
		FirstName:    "Aoife",
		LastName:     "Byrne",
		Phone:        &phone,
		Role:         role,
		IsActive:     true,
	}
}

func TestUserRepository_FindByEmailIsCaseInsensitive(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock, zap.NewNop())
	u := sampleUser(entity.RoleClient)

	mock.ExpectQuery(`WHERE lower\(email\) = lower\(\$1\) AND deleted_at IS NULL`).
		WithArgs("AOIFE@example.ie").
		WillReturnRows(userRow(pgxmock.NewRows(userRowColumns), u))

	got, err := repo.FindByEmail(context.Background(), "AOIFE@example.ie")
	require.NoError(t, err)
	assert.Equal(t, u, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsernameMissing(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock, zap.NewNop())

	mock.ExpectQuery(`WHERE username = \$1`).
		WithArgs("ghost").
		WillReturnRows(pgxmock.NewRows(userRowColumns))

	got, err := repo.FindByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListByRole(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock, zap.NewNop())
	a := sampleUser(entity.RoleTrainer)
	b := sampleUser(entity.RoleTrainer)
	b.Username = "sean"

	rows := pgxmock.NewRows(userRowColumns)
	userRow(rows, a)
	userRow(rows, b)

	mock.ExpectQuery(`WHERE role = \$1 AND is_active = TRUE`).
		WithArgs(entity.RoleTrainer).
		WillReturnRows(rows)

	got, err := repo.ListByRole(context.Background(), entity.RoleTrainer)
	require.NoError(t, err)
	assert.Equal(t, []*entity.User{a, b}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
