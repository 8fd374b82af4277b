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

type ReviewService interface {
	CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListBusinessReviews(ctx context.Context, businessID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, apperror.FromValidation(errs)
	}

	customer, err := s.repo.Customer.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	if customer == nil {
		return nil, apperror.NotFound("Customer profile not found")
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid booking ID format")
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	// Someone else's booking is indistinguishable from a missing one.
	if booking == nil || booking.CustomerID != customer.ID {
		return nil, apperror.NotFound("Booking not found")
	}

	if booking.Status != entity.BookingStatusCompleted {
		return nil, apperror.BadRequest("Only completed bookings can be reviewed")
	}

	// Pre-check; the unique constraint on reviews.booking_id is the real
	// one-review-per-booking guarantee.
	existing, err := s.repo.Review.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Booking has already been reviewed", "bookingId")
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		CustomerID: customer.ID,
		BusinessID: booking.BusinessID,
		BookingID:  bookingID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()))
		return nil, apperror.FromDatabase(err)
	}

	if err := s.refreshBusinessRating(ctx, booking.BusinessID); err != nil {
		// The review itself is persisted; a stale aggregate heals on the
		// next review.
		s.log.Error("Failed to refresh business rating",
			zap.Error(err),
			zap.String("business_id", booking.BusinessID.String()))
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("business_id", booking.BusinessID.String()),
		zap.Int("rating", req.Rating))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) refreshBusinessRating(ctx context.Context, businessID uuid.UUID) error {
	avg, err := s.repo.Review.AverageRatingByBusinessID(ctx, businessID)
	if err != nil {
		return err
	}
	count, err := s.repo.Review.CountByBusinessID(ctx, businessID)
	if err != nil {
		return err
	}
	return s.repo.Business.UpdateRating(ctx, businessID, avg, int(count))
}

func (s *reviewService) ListBusinessReviews(ctx context.Context, businessID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	if businessID == "" {
		return nil, apperror.BadRequest("businessId is required")
	}

	id, err := uuid.Parse(businessID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid business ID format")
	}

	reviews, err := s.repo.Review.FindByBusinessID(ctx, id, req.Limit(), req.Offset())
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}

	total, err := s.repo.Review.CountByBusinessID(ctx, id)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}

	result := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		result[i] = response.ReviewToResponse(review)
	}

	return response.NewPaginatedResponse(result, req.Page, req.PerPage, total), nil
}
