package wire

import (
	"garagehub/internal/adaptor"
	"garagehub/pkg/middleware"
	"garagehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(config.JWT.Secret, log))

		// POST /api/bookings - book a service
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings - caller's booking history, paginated
		r.Get("/api/bookings", bookingHandler.GetMyBookings)

		// PATCH /api/bookings/{id}/cancel - cancel own booking
		r.Patch("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
	})
}
