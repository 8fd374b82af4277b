package usecase

import (
	"context"
	"fmt"
	"time"

	"garagehub/internal/data/entity"
	"garagehub/internal/data/repository"
	"garagehub/internal/dto/request"
	"garagehub/internal/dto/response"
	"garagehub/pkg/apperror"
	"garagehub/pkg/metrics"
	"garagehub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetMyBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) error
	UpdateStatus(ctx context.Context, ownerID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperror.FromValidation(errs)
	}

	// 2. Caller must have a customer profile
	customer, err := s.repo.Customer.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	if customer == nil {
		return nil, apperror.NotFound("Customer profile not found")
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid service ID format")
	}
	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid business ID format")
	}

	// 3. Service must exist and belong to the named business
	svc, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	if svc == nil {
		return nil, apperror.NotFound("Service not found")
	}
	if svc.BusinessID != businessID {
		return nil, apperror.BadRequest("Service does not belong to the specified business")
	}
	if !svc.IsActive {
		return nil, apperror.BadRequest("Service is not available")
	}

	// 4. Business must be active to accept bookings
	business, err := s.repo.Business.FindByID(ctx, businessID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	if business == nil {
		return nil, apperror.NotFound("Business not found")
	}
	if !business.IsActive {
		return nil, apperror.BadRequest("Business is not accepting bookings")
	}

	scheduledDate, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return nil, apperror.BadRequest("Invalid scheduled date format, expected YYYY-MM-DD")
	}

	// 5. Price is copied from the service at booking time. Later price
	// changes never alter existing bookings.
	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:    customer.ID,
		BusinessID:    businessID,
		ServiceID:     serviceID,
		ScheduledDate: scheduledDate,
		ScheduledTime: req.ScheduledTime,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		Price:         svc.Price,
		TotalAmount:   svc.Price,
		Notes:         req.Notes,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer_id", customer.ID.String()),
			zap.String("service_id", req.ServiceID),
		)
		return nil, apperror.FromDatabase(err)
	}

	metrics.BookingsCreatedTotal.Inc()

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("business_id", businessID.String()),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	resp := response.BookingToResponse(booking, svc.Name, business.Name)
	return &resp, nil
}

// GetMyBookings returns the caller's bookings most recent scheduled date
// first; ties fall back to creation order.
func (s *bookingService) GetMyBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	customer, err := s.repo.Customer.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	if customer == nil {
		return nil, apperror.NotFound("Customer profile not found")
	}

	details, err := s.repo.Booking.FindDetailsByCustomerID(ctx, customer.ID, req.Limit(), req.Offset())
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}

	total, err := s.repo.Booking.CountByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}

	bookings := make([]response.BookingResponse, len(details))
	for i, d := range details {
		bookings[i] = response.BookingDetailToResponse(d)
	}

	return response.NewPaginatedResponse(bookings, req.Page, req.PerPage, total), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) error {
	customer, err := s.repo.Customer.FindByUserID(ctx, userID)
	if err != nil {
		return apperror.FromDatabase(err)
	}
	if customer == nil {
		return apperror.NotFound("Customer profile not found")
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return apperror.BadRequest("Invalid booking ID format")
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return apperror.FromDatabase(err)
	}
	// Foreign bookings look like missing ones.
	if booking == nil || booking.CustomerID != customer.ID {
		return apperror.NotFound("Booking not found")
	}

	if !booking.Status.CanTransitionTo(entity.BookingStatusCancelled) {
		return apperror.BadRequest(fmt.Sprintf("Booking with status %s cannot be cancelled", booking.Status))
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatusCancelled); err != nil {
		return apperror.FromDatabase(err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", id.String()),
		zap.String("customer_id", customer.ID.String()))

	return nil
}

// UpdateStatus moves a booking along its lifecycle on behalf of the business
// owner.
func (s *bookingService) UpdateStatus(ctx context.Context, ownerID uuid.UUID, bookingID string, req *request.UpdateBookingStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperror.FromValidation(errs)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return apperror.BadRequest("Invalid booking ID format")
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return apperror.FromDatabase(err)
	}
	if booking == nil {
		return apperror.NotFound("Booking not found")
	}

	if _, err := ownedBusiness(ctx, s.repo.Business, ownerID, booking.BusinessID.String()); err != nil {
		// Same non-disclosure as the business lookup itself.
		return apperror.NotFound("Booking not found")
	}

	next := entity.BookingStatus(req.Status)
	if !booking.Status.CanTransitionTo(next) {
		return apperror.BadRequest(fmt.Sprintf("Cannot transition booking from %s to %s", booking.Status, next))
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, next); err != nil {
		return apperror.FromDatabase(err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", id.String()),
		zap.String("status", req.Status))

	return nil
}
