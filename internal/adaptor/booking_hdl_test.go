package adaptor

import (
	"fmt"
	"net/http"
	"testing"

	"pt-booking/internal/dto/request"
	"pt-booking/internal/dto/response"
	srvmocks "pt-booking/internal/mocks/usecase"
	"pt-booking/internal/policy"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func bookingRouter(service *srvmocks.MockBookingService, actor policy.Actor) *chi.Mux {
	h := NewBookingHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Use(asActor(actor))
	r.Get("/api/bookings", h.ListBookings)
	r.Post("/api/bookings", h.CreateBooking)
	r.Get("/api/bookings/{id}", h.GetBooking)
	r.Put("/api/bookings/{id}", h.UpdateBooking)
	r.Delete("/api/bookings/{id}", h.DeleteBooking)
	r.Post("/api/bookings/{id}/cancel", h.CancelBooking)
	return r
}

func TestListBookings_QueryParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := srvmocks.NewMockBookingService(ctrl)

	service.EXPECT().ListBookings(gomock.Any(), trainerActor, gomock.Any()).
		DoAndReturn(func(_ any, _ policy.Actor, req *request.ListBookingsRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
			assert.Equal(t, 2, req.Page)
			assert.Equal(t, 20, req.PerPage)
			require.NotNil(t, req.Status)
			assert.Equal(t, "pending", *req.Status)
			return response.NewPaginatedResponse[response.BookingResponse](nil, 2, 20, 0), nil
		})

	rec := serve(t, bookingRouter(service, trainerActor), http.MethodGet, "/api/bookings?page=2&status=pending", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Status)
}

func TestBookingHandlers_RequireActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router := bookingRouter(srvmocks.NewMockBookingService(ctrl), nil)

	rec := serve(t, router, http.MethodGet, "/api/bookings", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBooking_ValidationFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := srvmocks.NewMockBookingService(ctrl)

	service.EXPECT().CreateBooking(gomock.Any(), clientActor, gomock.Any()).
		Return(nil, &policy.ValidationError{Fields: map[string]string{"date": "date is required"}})

	rec := serve(t, bookingRouter(service, clientActor), http.MethodPost, "/api/bookings", `{"time":"09:30"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Status)
	assert.Equal(t, map[string]any{"date": "date is required"}, env.Errors)
}

func TestCreateBooking_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := srvmocks.NewMockBookingService(ctrl)

	service.EXPECT().CreateBooking(gomock.Any(), clientActor, gomock.Any()).
		Return(&response.BookingResponse{ID: "b1", ClientName: "Aoife Byrne"}, nil)

	rec := serve(t, bookingRouter(service, clientActor), http.MethodPost, "/api/bookings",
		`{"date":"2026-03-14","time":"09:30"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Booking created", decodeEnvelope(t, rec).Message)
}

func TestCreateBooking_BadBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := serve(t, bookingRouter(srvmocks.NewMockBookingService(ctrl), clientActor), http.MethodPost, "/api/bookings", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingHandlers_RedirectOnForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := srvmocks.NewMockBookingService(ctrl)

	service.EXPECT().GetBooking(gomock.Any(), clientActor, "b1").Return(nil, policy.ErrForbidden)
	service.EXPECT().DeleteBooking(gomock.Any(), clientActor, "b2").Return(fmt.Errorf("load: %w", policy.ErrNotFound))

	router := bookingRouter(service, clientActor)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/bookings/b1"},
		{http.MethodDelete, "/api/bookings/b2"},
	} {
		rec := serve(t, router, tc.method, tc.path, "")
		assert.Equal(t, http.StatusSeeOther, rec.Code, tc.path)
		assert.Equal(t, "/api/bookings", rec.Header().Get("Location"), tc.path)
		assert.Equal(t, policy.ErrForbidden.Error(), decodeEnvelope(t, rec).Message, tc.path)
	}
}

func TestCancelBooking_PassesID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := srvmocks.NewMockBookingService(ctrl)

	service.EXPECT().CancelBooking(gomock.Any(), clientActor, "b9").
		Return(&response.BookingResponse{ID: "b9", Status: "cancelled"}, nil)

	rec := serve(t, bookingRouter(service, clientActor), http.MethodPost, "/api/bookings/b9/cancel", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Booking cancelled", decodeEnvelope(t, rec).Message)
}

func TestUpdateBooking_ServiceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service := srvmocks.NewMockBookingService(ctrl)

	service.EXPECT().UpdateBooking(gomock.Any(), trainerActor, "b1", gomock.Any()).
		Return(nil, fmt.Errorf("update booking: connection reset"))

	rec := serve(t, bookingRouter(service, trainerActor), http.MethodPut, "/api/bookings/b1", `{"notes":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
