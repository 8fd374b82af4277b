package usecase

import (
	"garagehub/internal/data/repository"
	"garagehub/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Booking  BookingService
	Business BusinessService
	Stats    StatsService
	Review   ReviewService
	Vehicle  VehicleService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Booking:  NewBookingService(repo, log),
		Business: NewBusinessService(repo, log),
		Stats:    NewStatsService(repo, log),
		Review:   NewReviewService(repo, log),
		Vehicle:  NewVehicleService(repo, log),
	}
}
