package adaptor

import (
	"net/http"

	"pt-booking/internal/dto/response"
	"pt-booking/internal/policy"
	"pt-booking/internal/usecase"
	"pt-booking/pkg/utils"

	"go.uber.org/zap"
)

type NotificationHandler struct {
	service usecase.NotificationService
	log     *zap.Logger
}

func NewNotificationHandler(service usecase.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log.With(zap.String("handler", "notification")),
	}
}

// ListNotifications handles GET /api/notifications (trainer only)
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	items, err := h.service.ListNotifications(r.Context(), actor)
	if err != nil {
		writeError(w, h.log, err, "list notifications")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// CheckNotifications handles GET /api/notifications/check (optional auth).
// Pollers always get 200 with a count, zero when anonymous or on failure.
func (h *NotificationHandler) CheckNotifications(w http.ResponseWriter, r *http.Request) {
	actor, _ := policy.ActorFromContext(r.Context())

	feed, err := h.service.CheckFeed(r.Context(), actor)
	if err != nil {
		h.log.Error("Failed to check notifications", zap.Error(err))
		feed = &response.FeedResponse{}
	}

	utils.ResponseRaw(w, feed)
}
