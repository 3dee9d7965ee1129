package adaptor

import (
	"net/http"

	"pt-booking/internal/usecase"
	"pt-booking/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/user/profile (protected)
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// ListTrainers handles GET /api/trainers (protected)
func (h *UserHandler) ListTrainers(w http.ResponseWriter, r *http.Request) {
	trainers, err := h.service.ListTrainers(r.Context())
	if err != nil {
		writeError(w, h.log, err, "list trainers")
		return
	}

	utils.ResponseSuccess(w, "success", trainers)
}

// ListClients handles GET /api/clients (trainer only)
func (h *UserHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	clients, err := h.service.ListClients(r.Context(), actor)
	if err != nil {
		writeError(w, h.log, err, "list clients")
		return
	}

	utils.ResponseSuccess(w, "success", clients)
}
