package wire

import (
	"pt-booking/internal/adaptor"
	"pt-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, auth *middleware.Authenticator) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth.Require).Post("/api/logout", authHandler.Logout)
}
