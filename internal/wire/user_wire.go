package wire

import (
	"pt-booking/internal/adaptor"
	"pt-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser exposes the profile and the account pickers used by booking forms
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, auth *middleware.Authenticator, log *zap.Logger) {
	r.Group(func(r chi.Router) {
		r.Use(auth.Require)

		r.Get("/api/user/profile", userHandler.GetProfile)
		r.Get("/api/trainers", userHandler.ListTrainers)

		// ==================== TRAINER ROUTES ====================
		r.With(middleware.RequireTrainer(log)).Get("/api/clients", userHandler.ListClients)
	})
}
