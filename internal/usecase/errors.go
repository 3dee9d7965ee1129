package usecase

import (
	"errors"

	"pt-booking/internal/policy"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	// ErrTrainerOnly is an authorization failure, reported like policy.ErrForbidden
	ErrTrainerOnly = errors.New("only trainers can view this page")
)

func fieldError(field, msg string) error {
	return &policy.ValidationError{Fields: map[string]string{field: msg}}
}

func validationFailed(fields map[string]string) error {
	return &policy.ValidationError{Fields: fields}
}
