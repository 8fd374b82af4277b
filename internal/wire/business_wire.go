package wire

import (
	"garagehub/internal/adaptor"
	"garagehub/internal/data/entity"
	"garagehub/pkg/middleware"
	"garagehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBusiness(
	r chi.Router,
	businessHandler *adaptor.BusinessHandler,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Owner-side endpoints. Ownership of the business named in the request is
	// checked inside the services; the middleware only establishes identity.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(config.JWT.Secret, log))

		// POST /api/business - register a business (provider roles only)
		r.Post("/api/business", businessHandler.CreateBusiness)

		// GET /api/business/stats?businessId= - monthly and lifetime figures
		r.Get("/api/business/stats", businessHandler.GetStats)

		// GET /api/business/bookings?businessId=&limit= - recent bookings
		r.Get("/api/business/bookings", businessHandler.GetBookings)

		// GET /api/business/customers?businessId= - customer list
		r.Get("/api/business/customers", businessHandler.GetCustomers)

		// PATCH /api/business/bookings/{id}/status - advance booking lifecycle
		r.Patch("/api/business/bookings/{id}/status", bookingHandler.UpdateStatus)

		// POST /api/business/services - add a service to the catalog
		r.Post("/api/business/services", businessHandler.CreateService)
	})

	// GET /api/services?businessId= - public catalog browsing
	r.Get("/api/services", businessHandler.ListServices)

	// Admin-only verification.
	r.Route("/api/admin/businesses", func(r chi.Router) {
		r.Use(middleware.AuthSession(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))

		// PATCH /api/admin/businesses/{id}/verify
		r.Patch("/{id}/verify", businessHandler.Verify)
	})
}
