package repository

import (
	"garagehub/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Customer CustomerRepository
	Vehicle  VehicleRepository
	Business BusinessRepository
	Service  ServiceRepository
	Booking  BookingRepository
	Review   ReviewRepository
	Stats    StatsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Vehicle:  NewVehicleRepository(db, log),
		Business: NewBusinessRepository(db, log),
		Service:  NewServiceRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Review:   NewReviewRepository(db, log),
		Stats:    NewStatsRepository(db, log),
	}
}
