package usecase

import (
	"context"
	"net/http"
	"testing"

	"garagehub/internal/data/entity"
	"garagehub/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateReview(t *testing.T) {
	repo := newFakeRepository()
	userID, _ := seedCustomer(repo)
	business := seedBusiness(repo, uuid.New())
	service := seedService(repo, business.ID, 90)

	bookingSvc := NewBookingService(repo, zap.NewNop())
	reviewSvc := NewReviewService(repo, zap.NewNop())

	created, err := bookingSvc.CreateBooking(context.Background(), userID, bookingRequest(service))
	require.NoError(t, err)
	bookingID, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	req := &request.CreateReviewRequest{BookingID: created.ID, Rating: 4}

	t.Run("pending booking cannot be reviewed", func(t *testing.T) {
		_, err := reviewSvc.CreateReview(context.Background(), userID, req)
		requireAppError(t, err, http.StatusBadRequest)
	})

	require.NoError(t, repo.Booking.UpdateStatus(context.Background(), bookingID, entity.BookingStatusCompleted))

	t.Run("foreign booking reads as missing", func(t *testing.T) {
		strangerID, _ := seedCustomer(repo)
		_, err := reviewSvc.CreateReview(context.Background(), strangerID, req)
		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("completed booking is reviewable", func(t *testing.T) {
		resp, err := reviewSvc.CreateReview(context.Background(), userID, req)
		require.NoError(t, err)
		require.Equal(t, 4, resp.Rating)
		require.Equal(t, business.ID.String(), resp.BusinessID)

		// The business aggregate follows the review.
		stored, err := repo.Business.FindByID(context.Background(), business.ID)
		require.NoError(t, err)
		require.Equal(t, 4.0, stored.Rating)
		require.Equal(t, 1, stored.ReviewCount)
	})

	t.Run("one review per booking", func(t *testing.T) {
		_, err := reviewSvc.CreateReview(context.Background(), userID, req)
		appErr := requireAppError(t, err, http.StatusConflict)
		require.Equal(t, "bookingId", appErr.Field)
	})
}

func TestListBusinessReviews(t *testing.T) {
	repo := newFakeRepository()
	business := seedBusiness(repo, uuid.New())
	reviewSvc := NewReviewService(repo, zap.NewNop())

	for i := 0; i < 3; i++ {
		review := &entity.Review{
			BaseSimple: entity.BaseSimple{ID: uuid.New()},
			CustomerID: uuid.New(),
			BusinessID: business.ID,
			BookingID:  uuid.New(),
			Rating:     5,
		}
		require.NoError(t, repo.Review.Create(context.Background(), review))
	}

	resp, err := reviewSvc.ListBusinessReviews(context.Background(), business.ID.String(), &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	require.Equal(t, int64(3), resp.Pagination.Total)
	require.Equal(t, 2, resp.Pagination.TotalPages)

	_, err = reviewSvc.ListBusinessReviews(context.Background(), "", &request.PaginatedRequest{Page: 1, PerPage: 10})
	requireAppError(t, err, http.StatusBadRequest)
}
