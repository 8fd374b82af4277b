package adaptor

import (
	"garagehub/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Booking  *BookingHandler
	Business *BusinessHandler
	Review   *ReviewHandler
	Vehicle  *VehicleHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Business: NewBusinessHandler(service.Business, service.Stats, log),
		Review:   NewReviewHandler(service.Review, log),
		Vehicle:  NewVehicleHandler(service.Vehicle, log),
	}
}
