package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pt-booking/internal/data/repository"
	repomocks "pt-booking/internal/mocks/repository"
	"pt-booking/pkg/utils"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testApp(t *testing.T, visibility string) (*App, error) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := &repository.Repository{
		User:         repomocks.NewMockUserRepository(ctrl),
		Session:      repomocks.NewMockSessionRepository(ctrl),
		Booking:      repomocks.NewMockBookingRepository(ctrl),
		Notification: repomocks.NewMockNotificationRepository(ctrl),
	}
	config := &utils.Config{
		App:     utils.AppConfig{CORSAllowedOrigin: "*"},
		Booking: utils.BookingConfig{TrainerVisibility: visibility},
	}
	return Wiring(repo, repomocks.NewMockTransactor(ctrl), config, zap.NewNop())
}

func TestWiring_RejectsUnknownVisibility(t *testing.T) {
	_, err := testApp(t, "everyone")
	assert.Error(t, err)
}

func TestWiring_Routes(t *testing.T) {
	app, err := testApp(t, "global")
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
		code   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/bookings", http.StatusUnauthorized},
		{http.MethodPost, "/api/bookings/abc/cancel", http.StatusUnauthorized},
		{http.MethodGet, "/api/notifications", http.StatusUnauthorized},
		{http.MethodGet, "/api/clients", http.StatusUnauthorized},
		{http.MethodPost, "/api/logout", http.StatusUnauthorized},
		{http.MethodGet, "/api/notifications/check", http.StatusOK},
		{http.MethodGet, "/api/movies", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			app.Router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
