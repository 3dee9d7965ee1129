package wire

import (
	"pt-booking/internal/adaptor"
	"pt-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

// wireBooking serves both roles; scope and ownership are decided per actor
func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, auth *middleware.Authenticator) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(auth.Require)

		r.Get("/", bookingHandler.ListBookings)   // GET /api/bookings?status=pending&page=1&per_page=20
		r.Post("/", bookingHandler.CreateBooking) // POST /api/bookings

		r.Get("/{id}", bookingHandler.GetBooking)
		r.Put("/{id}", bookingHandler.UpdateBooking)
		r.Delete("/{id}", bookingHandler.DeleteBooking)
		r.Post("/{id}/cancel", bookingHandler.CancelBooking)
	})
}
