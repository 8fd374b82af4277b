package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"garagehub/internal/data/entity"
	"garagehub/internal/data/repository"
	"garagehub/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func requireAppError(t *testing.T, err error, status int) *apperror.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok, "expected *apperror.AppError, got %T", err)
	require.Equal(t, status, appErr.Status)
	return appErr
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     string
	}{
		{"both zero", 0, 0, "0%"},
		{"growth from zero", 5, 0, "+100%"},
		{"doubled", 10, 5, "+100.0%"},
		{"halved", 5, 10, "-50.0%"},
		{"unchanged", 7, 7, "+0.0%"},
		{"drop to zero", 0, 4, "-100.0%"},
		{"fractional", 110, 100, "+10.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PercentChange(tt.current, tt.previous))
		})
	}
}

func seedBusiness(repo *repository.Repository, ownerID uuid.UUID) *entity.Business {
	business := &entity.Business{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		OwnerID:  ownerID,
		Name:     "Precision Motors",
		Type:     entity.BusinessTypeGarage,
		IsActive: true,
	}
	repo.Business.Create(context.Background(), business)
	return business
}

func TestGetBusinessStats(t *testing.T) {
	ownerID := uuid.New()
	repo := newFakeRepository()
	business := seedBusiness(repo, ownerID)

	stats := repo.Stats.(*fakeStatsRepo)
	stats.buckets["2024-06"] = &entity.MonthlyBucket{Bookings: 10, Revenue: 500, UniqueCustomers: 4}
	stats.buckets["2024-05"] = &entity.MonthlyBucket{Bookings: 5, Revenue: 250, UniqueCustomers: 4}
	stats.lifetime = &entity.LifetimeStats{
		TotalBookings:     20,
		CompletedBookings: 15,
		DistinctCustomers: 8,
		RepeatCustomers:   2,
	}

	svc := NewStatsService(repo, zap.NewNop()).(*statsService)
	svc.now = func() time.Time {
		return time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	}

	resp, err := svc.GetBusinessStats(context.Background(), ownerID, business.ID.String())
	require.NoError(t, err)

	require.Equal(t, business.ID.String(), resp.BusinessID)
	require.Equal(t, int64(10), resp.CurrentMonth.Bookings)
	require.Equal(t, "+100.0%", resp.CurrentMonth.BookingsChange)
	require.Equal(t, "+100.0%", resp.CurrentMonth.RevenueChange)
	require.Equal(t, "+0.0%", resp.CurrentMonth.CustomersChange)

	// May had no April baseline, so its change reads as growth from zero.
	require.Equal(t, int64(5), resp.PreviousMonth.Bookings)
	require.Equal(t, "+100%", resp.PreviousMonth.BookingsChange)

	require.Equal(t, int64(20), resp.Lifetime.TotalBookings)
	require.InDelta(t, 75.0, resp.Lifetime.CompletionRate, 0.001)
	require.InDelta(t, 25.0, resp.Lifetime.RepeatCustomersPercentage, 0.001)
}

func TestGetBusinessStatsEmptyHistory(t *testing.T) {
	ownerID := uuid.New()
	repo := newFakeRepository()
	business := seedBusiness(repo, ownerID)

	svc := NewStatsService(repo, zap.NewNop())

	resp, err := svc.GetBusinessStats(context.Background(), ownerID, business.ID.String())
	require.NoError(t, err)

	require.Equal(t, "0%", resp.CurrentMonth.BookingsChange)
	require.Zero(t, resp.Lifetime.CompletionRate)
	require.Zero(t, resp.Lifetime.RepeatCustomersPercentage)
	require.Zero(t, resp.Lifetime.AvgRating)
}

func TestGetBusinessStatsOwnership(t *testing.T) {
	ownerID := uuid.New()
	repo := newFakeRepository()
	business := seedBusiness(repo, ownerID)

	svc := NewStatsService(repo, zap.NewNop())

	t.Run("foreign business reads as missing", func(t *testing.T) {
		_, err := svc.GetBusinessStats(context.Background(), uuid.New(), business.ID.String())
		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("missing businessId", func(t *testing.T) {
		_, err := svc.GetBusinessStats(context.Background(), ownerID, "")
		requireAppError(t, err, http.StatusBadRequest)
	})

	t.Run("malformed businessId", func(t *testing.T) {
		_, err := svc.GetBusinessStats(context.Background(), ownerID, "not-a-uuid")
		requireAppError(t, err, http.StatusBadRequest)
	})
}
