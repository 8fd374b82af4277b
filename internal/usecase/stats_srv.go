package usecase

import (
	"context"
	"fmt"
	"time"

	"garagehub/internal/data/entity"
	"garagehub/internal/data/repository"
	"garagehub/internal/dto/response"
	"garagehub/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StatsService interface {
	GetBusinessStats(ctx context.Context, ownerID uuid.UUID, businessID string) (*response.BusinessStatsResponse, error)
}

type statsService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewStatsService(repo *repository.Repository, log *zap.Logger) StatsService {
	return &statsService{
		repo: repo,
		log:  log.With(zap.String("service", "stats")),
		now:  time.Now,
	}
}

// PercentChange renders the relative change between two monthly figures.
// A zero baseline cannot produce a ratio, so growth from nothing reads as
// "+100%" and nothing-to-nothing reads as "0%".
func PercentChange(current, previous float64) string {
	if previous == 0 {
		if current > 0 {
			return "+100%"
		}
		return "0%"
	}
	return fmt.Sprintf("%+.1f%%", (current-previous)/previous*100)
}

func (s *statsService) GetBusinessStats(ctx context.Context, ownerID uuid.UUID, businessID string) (*response.BusinessStatsResponse, error) {
	business, err := ownedBusiness(ctx, s.repo.Business, ownerID, businessID)
	if err != nil {
		return nil, err
	}

	// Three consecutive calendar-month windows, so both displayed months get
	// a change figure against the month before them.
	now := s.now()
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextStart := currentStart.AddDate(0, 1, 0)
	previousStart := currentStart.AddDate(0, -1, 0)
	earlierStart := currentStart.AddDate(0, -2, 0)

	current, err := s.repo.Stats.MonthlyBucket(ctx, business.ID, currentStart, nextStart)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	previous, err := s.repo.Stats.MonthlyBucket(ctx, business.ID, previousStart, currentStart)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	earlier, err := s.repo.Stats.MonthlyBucket(ctx, business.ID, earlierStart, previousStart)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}

	lifetime, err := s.repo.Stats.LifetimeStats(ctx, business.ID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}

	avgRating, err := s.repo.Review.AverageRatingByBusinessID(ctx, business.ID)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}

	return &response.BusinessStatsResponse{
		BusinessID:    business.ID.String(),
		CurrentMonth:  monthStats(current, previous),
		PreviousMonth: monthStats(previous, earlier),
		Lifetime:      lifetimeStats(lifetime, avgRating),
	}, nil
}

func monthStats(bucket, prior *entity.MonthlyBucket) response.MonthStats {
	return response.MonthStats{
		Bookings:        bucket.Bookings,
		BookingsChange:  PercentChange(float64(bucket.Bookings), float64(prior.Bookings)),
		Revenue:         bucket.Revenue,
		RevenueChange:   PercentChange(bucket.Revenue, prior.Revenue),
		UniqueCustomers: bucket.UniqueCustomers,
		CustomersChange: PercentChange(float64(bucket.UniqueCustomers), float64(prior.UniqueCustomers)),
	}
}

func lifetimeStats(stats *entity.LifetimeStats, avgRating float64) response.LifetimeStatsResponse {
	resp := response.LifetimeStatsResponse{
		TotalBookings:     stats.TotalBookings,
		CompletedBookings: stats.CompletedBookings,
		AvgRating:         avgRating,
	}
	if stats.TotalBookings > 0 {
		resp.CompletionRate = float64(stats.CompletedBookings) / float64(stats.TotalBookings) * 100
	}
	if stats.DistinctCustomers > 0 {
		resp.RepeatCustomersPercentage = float64(stats.RepeatCustomers) / float64(stats.DistinctCustomers) * 100
	}
	return resp
}
