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

type BusinessService interface {
	CreateBusiness(ctx context.Context, userID uuid.UUID, role entity.UserRole, req *request.CreateBusinessRequest) (*response.BusinessResponse, error)
	GetBusinessBookings(ctx context.Context, ownerID uuid.UUID, businessID string, limit int) ([]response.BookingResponse, error)
	GetBusinessCustomers(ctx context.Context, ownerID uuid.UUID, businessID string) ([]response.CustomerSummaryResponse, error)
	CreateService(ctx context.Context, ownerID uuid.UUID, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
	ListServices(ctx context.Context, businessID string) ([]response.ServiceResponse, error)
	VerifyBusiness(ctx context.Context, businessID string) error
}

type businessService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBusinessService(repo *repository.Repository, log *zap.Logger) BusinessService {
	return &businessService{
		repo: repo,
		log:  log.With(zap.String("service", "business")),
	}
}

func (s *businessService) CreateBusiness(ctx context.Context, userID uuid.UUID, role entity.UserRole, req *request.CreateBusinessRequest) (*response.BusinessResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create business validation failed", zap.Any("errors", errs))
		return nil, apperror.FromValidation(errs)
	}

	// The business type follows from the caller's role; customers and admins
	// have no type to map to.
	businessType, ok := entity.BusinessTypeForRole(role)
	if !ok {
		return nil, apperror.Forbidden("Only provider accounts can create a business")
	}

	// Pre-check only. The unique index on businesses.owner_id is what holds
	// the one-business-per-owner rule under concurrent requests.
	existing, err := s.repo.Business.FindByOwnerID(ctx, userID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("User already has a business", "ownerId")
	}

	now := time.Now()
	business := &entity.Business{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID:     userID,
		Name:        req.Name,
		Type:        businessType,
		Description: req.Description,
		City:        req.City,
		IsActive:    true,
		IsVerified:  false,
	}

	if err := s.repo.Business.Create(ctx, business); err != nil {
		s.log.Error("Failed to create business",
			zap.Error(err),
			zap.String("owner_id", userID.String()))
		return nil, apperror.FromDatabase(err)
	}

	s.log.Info("Business created",
		zap.String("business_id", business.ID.String()),
		zap.String("type", string(businessType)))

	resp := response.BusinessToResponse(business)
	return &resp, nil
}

func (s *businessService) GetBusinessBookings(ctx context.Context, ownerID uuid.UUID, businessID string, limit int) ([]response.BookingResponse, error) {
	business, err := ownedBusiness(ctx, s.repo.Business, ownerID, businessID)
	if err != nil {
		return nil, err
	}

	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	details, err := s.repo.Booking.FindRecentByBusinessID(ctx, business.ID, limit)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}

	bookings := make([]response.BookingResponse, len(details))
	for i, d := range details {
		bookings[i] = response.BookingDetailToResponse(d)
	}

	return bookings, nil
}

func (s *businessService) GetBusinessCustomers(ctx context.Context, ownerID uuid.UUID, businessID string) ([]response.CustomerSummaryResponse, error) {
	business, err := ownedBusiness(ctx, s.repo.Business, ownerID, businessID)
	if err != nil {
		return nil, err
	}

	summaries, err := s.repo.Booking.FindCustomersByBusinessID(ctx, business.ID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}

	customers := make([]response.CustomerSummaryResponse, len(summaries))
	for i, summary := range summaries {
		customers[i] = response.CustomerSummaryToResponse(summary)
	}

	return customers, nil
}

func (s *businessService) CreateService(ctx context.Context, ownerID uuid.UUID, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create service validation failed", zap.Any("errors", errs))
		return nil, apperror.FromValidation(errs)
	}

	business, err := ownedBusiness(ctx, s.repo.Business, ownerID, req.BusinessID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	service := &entity.Service{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BusinessID:      business.ID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}

	if err := s.repo.Service.Create(ctx, service); err != nil {
		s.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("business_id", business.ID.String()))
		return nil, apperror.FromDatabase(err)
	}

	s.log.Info("Service created",
		zap.String("service_id", service.ID.String()),
		zap.String("business_id", business.ID.String()))

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

// ListServices is public: anyone browsing a business sees its active catalog.
func (s *businessService) ListServices(ctx context.Context, businessID string) ([]response.ServiceResponse, error) {
	if businessID == "" {
		return nil, apperror.BadRequest("businessId is required")
	}

	id, err := uuid.Parse(businessID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid business ID format")
	}

	business, err := s.repo.Business.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	if business == nil {
		return nil, apperror.NotFound("Business not found")
	}

	services, err := s.repo.Service.FindByBusinessID(ctx, id)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}

	result := make([]response.ServiceResponse, 0, len(services))
	for _, service := range services {
		if !service.IsActive {
			continue
		}
		result = append(result, response.ServiceToResponse(service))
	}

	return result, nil
}

func (s *businessService) VerifyBusiness(ctx context.Context, businessID string) error {
	id, err := uuid.Parse(businessID)
	if err != nil {
		return apperror.BadRequest("Invalid business ID format")
	}

	business, err := s.repo.Business.FindByID(ctx, id)
	if err != nil {
		return apperror.FromDatabase(err)
	}
	if business == nil {
		return apperror.NotFound("Business not found")
	}

	if err := s.repo.Business.SetVerified(ctx, id, true); err != nil {
		return apperror.FromDatabase(err)
	}

	s.log.Info("Business verified", zap.String("business_id", id.String()))
	return nil
}
