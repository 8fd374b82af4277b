package wire

import (
	"garagehub/internal/adaptor"
	"garagehub/pkg/middleware"
	"garagehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(config.JWT.Secret, log))

		// POST /api/reviews - review a completed booking
		r.Post("/api/reviews", reviewHandler.CreateReview)
	})

	// GET /api/reviews?businessId= - public review listing
	r.Get("/api/reviews", reviewHandler.ListReviews)
}
