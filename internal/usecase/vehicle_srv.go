package usecase

import (
	"context"
	"time"

	"garagehub/internal/data/entity"
	"garagehub/internal/data/repository"
	"garagehub/internal/dto/request"
	"garagehub/internal/dto/response"
	"garagehub/pkg/apperror"
	"garagehub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VehicleService interface {
	CreateVehicle(ctx context.Context, userID uuid.UUID, req *request.CreateVehicleRequest) (*response.VehicleResponse, error)
	GetMyVehicles(ctx context.Context, userID uuid.UUID) ([]response.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, userID uuid.UUID, vehicleID string) error
}

type vehicleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVehicleService(repo *repository.Repository, log *zap.Logger) VehicleService {
	return &vehicleService{
		repo: repo,
		log:  log.With(zap.String("service", "vehicle")),
	}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, userID uuid.UUID, req *request.CreateVehicleRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create vehicle validation failed", zap.Any("errors", errs))
		return nil, apperror.FromValidation(errs)
	}

	customer, err := s.repo.Customer.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	if customer == nil {
		return nil, apperror.NotFound("Customer profile not found")
	}

	now := time.Now()
	vehicle := &entity.Vehicle{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:  customer.ID,
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		PlateNumber: req.PlateNumber,
	}

	if err := s.repo.Vehicle.Create(ctx, vehicle); err != nil {
		s.log.Error("Failed to create vehicle",
			zap.Error(err),
			zap.String("customer_id", customer.ID.String()))
		return nil, apperror.FromDatabase(err)
	}

	s.log.Info("Vehicle created",
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.String("customer_id", customer.ID.String()))

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) GetMyVehicles(ctx context.Context, userID uuid.UUID) ([]response.VehicleResponse, error) {
	customer, err := s.repo.Customer.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	if customer == nil {
		return nil, apperror.NotFound("Customer profile not found")
	}

	vehicles, err := s.repo.Vehicle.FindByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}

	result := make([]response.VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		result[i] = response.VehicleToResponse(vehicle)
	}

	return result, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, userID uuid.UUID, vehicleID string) error {
	customer, err := s.repo.Customer.FindByUserID(ctx, userID)
	if err != nil {
		return apperror.FromDatabase(err)
	}
	if customer == nil {
		return apperror.NotFound("Customer profile not found")
	}

	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return apperror.BadRequest("Invalid vehicle ID format")
	}

	// The delete is scoped to the caller's customer ID, so another
	// customer's vehicle comes back as not found.
	if err := s.repo.Vehicle.Delete(ctx, id, customer.ID); err != nil {
		return apperror.NotFound("Vehicle not found")
	}

	s.log.Info("Vehicle deleted",
		zap.String("vehicle_id", id.String()),
		zap.String("customer_id", customer.ID.String()))

	return nil
}
