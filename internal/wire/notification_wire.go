package wire

import (
	"pt-booking/internal/adaptor"
	"pt-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNotification(r chi.Router, notificationHandler *adaptor.NotificationHandler, auth *middleware.Authenticator, log *zap.Logger) {
	// polled by the page script, anonymous callers get a zero count
	r.With(auth.Optional).Get("/api/notifications/check", notificationHandler.CheckNotifications)

	// ==================== TRAINER ROUTES ====================
	r.With(auth.Require, middleware.RequireTrainer(log)).Get("/api/notifications", notificationHandler.ListNotifications)
}
