package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"pt-booking/internal/dto/response"
	srvmocks "pt-booking/internal/mocks/usecase"
	"pt-booking/internal/policy"
	"pt-booking/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func notificationRouter(service *srvmocks.MockNotificationService, actor policy.Actor) *chi.Mux {
	h := NewNotificationHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Use(asActor(actor))
	r.Get("/api/notifications", h.ListNotifications)
	r.Get("/api/notifications/check", h.CheckNotifications)
	return r
}

func TestCheckNotifications_RawBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := srvmocks.NewMockNotificationService(ctrl)

	service.EXPECT().CheckFeed(gomock.Any(), trainerActor).Return(&response.FeedResponse{
		Count:  3,
		Latest: &response.FeedItem{ClientName: "Aoife Byrne", Date: "2026-03-14", Time: "09:30"},
	}, nil)

	rec := serve(t, notificationRouter(service, trainerActor), http.MethodGet, "/api/notifications/check", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(3), body["count"])
	latest, ok := body["latest"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Aoife Byrne", latest["client_name"])
	assert.NotContains(t, latest, "status")
}

func TestCheckNotifications_ZeroOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := srvmocks.NewMockNotificationService(ctrl)

	service.EXPECT().CheckFeed(gomock.Any(), gomock.Nil()).Return(nil, errors.New("db down"))

	rec := serve(t, notificationRouter(service, nil), http.MethodGet, "/api/notifications/check", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":0}`, rec.Body.String())
}

func TestListNotifications_ClientRedirected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := srvmocks.NewMockNotificationService(ctrl)

	service.EXPECT().ListNotifications(gomock.Any(), clientActor).Return(nil, usecase.ErrTrainerOnly)

	rec := serve(t, notificationRouter(service, clientActor), http.MethodGet, "/api/notifications", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/api/bookings", rec.Header().Get("Location"))
}
