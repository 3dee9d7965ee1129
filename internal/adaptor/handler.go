package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"pt-booking/internal/policy"
	"pt-booking/internal/usecase"
	"pt-booking/pkg/middleware"
	"pt-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Booking      *BookingHandler
	Notification *NotificationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		User:         NewUserHandler(service.User, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Notification: NewNotificationHandler(service.Notification, log),
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// clientContext carries the caller's user agent and address into the
// session that login or registration creates.
func clientContext(r *http.Request) context.Context {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	return utils.SetClientInfoContext(r.Context(), r.UserAgent(), ip)
}

// requireActor writes 401 and returns false when the request carries no actor.
func requireActor(w http.ResponseWriter, r *http.Request) (policy.Actor, bool) {
	actor, ok := policy.ActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return nil, false
	}
	return actor, true
}

// writeError maps the errors shared by every handler. Authorization
// failures and unknown bookings both redirect to the booking list.
func writeError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var verr *policy.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.ResponseBadRequest(w, "Validation failed", verr.Fields)
	case errors.Is(err, policy.ErrForbidden),
		errors.Is(err, policy.ErrNotFound):
		utils.ResponseRedirect(w, middleware.BookingsPath, policy.ErrForbidden.Error())
	case errors.Is(err, usecase.ErrTrainerOnly):
		utils.ResponseRedirect(w, middleware.BookingsPath, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, "Invalid username or password")
	case errors.Is(err, usecase.ErrAccountInactive):
		utils.ResponseForbidden(w, "Account is deactivated")
	case errors.Is(err, usecase.ErrUsernameTaken),
		errors.Is(err, usecase.ErrEmailTaken):
		utils.ResponseConflict(w, err.Error())
	case errors.Is(err, usecase.ErrUserNotFound):
		utils.ResponseNotFound(w, "User not found")
	default:
		log.Error("Service error",
			zap.String("operation", operation),
			zap.Error(err),
		)
		utils.ResponseInternalError(w, "Internal server error")
	}
}
