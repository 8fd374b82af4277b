package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"garagehub/internal/data/entity"
	"garagehub/internal/data/repository"
	"garagehub/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedCustomer(repo *repository.Repository) (userID, customerID uuid.UUID) {
	userID = uuid.New()
	customer := &entity.Customer{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		UserID: userID,
	}
	repo.Customer.Create(context.Background(), customer)
	return userID, customer.ID
}

func seedService(repo *repository.Repository, businessID uuid.UUID, price float64) *entity.Service {
	service := &entity.Service{
		Base:            entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		BusinessID:      businessID,
		Name:            "Oil Change",
		Price:           price,
		DurationMinutes: 45,
		IsActive:        true,
	}
	repo.Service.Create(context.Background(), service)
	return service
}

func bookingRequest(service *entity.Service) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		ServiceID:     service.ID.String(),
		BusinessID:    service.BusinessID.String(),
		ScheduledDate: "2030-05-20",
		ScheduledTime: "14:30",
	}
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeRepository()
	userID, customerID := seedCustomer(repo)
	business := seedBusiness(repo, uuid.New())
	service := seedService(repo, business.ID, 150)

	svc := NewBookingService(repo, zap.NewNop())

	resp, err := svc.CreateBooking(context.Background(), userID, bookingRequest(service))
	require.NoError(t, err)

	require.Equal(t, customerID.String(), resp.CustomerID)
	require.Equal(t, entity.BookingStatusPending, resp.Status)
	require.Equal(t, entity.PaymentStatusPending, resp.PaymentStatus)
	require.Equal(t, "2030-05-20", resp.ScheduledDate)
	require.Equal(t, "14:30", resp.ScheduledTime)
	require.Equal(t, 150.0, resp.Price)
	require.Equal(t, 150.0, resp.TotalAmount)

	// Later price changes leave the booking untouched.
	service.Price = 999
	require.NoError(t, repo.Service.Update(context.Background(), service))

	bookingID, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	stored, err := repo.Booking.FindByID(context.Background(), bookingID)
	require.NoError(t, err)
	require.Equal(t, 150.0, stored.Price)
}

func TestCreateBookingPreconditions(t *testing.T) {
	repo := newFakeRepository()
	userID, _ := seedCustomer(repo)
	business := seedBusiness(repo, uuid.New())
	service := seedService(repo, business.ID, 80)

	svc := NewBookingService(repo, zap.NewNop())

	t.Run("no customer profile", func(t *testing.T) {
		_, err := svc.CreateBooking(context.Background(), uuid.New(), bookingRequest(service))
		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("unknown service", func(t *testing.T) {
		req := bookingRequest(service)
		req.ServiceID = uuid.New().String()
		_, err := svc.CreateBooking(context.Background(), userID, req)
		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("service from another business", func(t *testing.T) {
		other := seedBusiness(repo, uuid.New())
		req := bookingRequest(service)
		req.BusinessID = other.ID.String()
		_, err := svc.CreateBooking(context.Background(), userID, req)
		requireAppError(t, err, http.StatusBadRequest)
	})

	t.Run("inactive service", func(t *testing.T) {
		service.IsActive = false
		defer func() { service.IsActive = true }()
		_, err := svc.CreateBooking(context.Background(), userID, bookingRequest(service))
		requireAppError(t, err, http.StatusBadRequest)
	})

	t.Run("inactive business", func(t *testing.T) {
		business.IsActive = false
		defer func() { business.IsActive = true }()
		_, err := svc.CreateBooking(context.Background(), userID, bookingRequest(service))
		requireAppError(t, err, http.StatusBadRequest)
	})

	t.Run("malformed date", func(t *testing.T) {
		req := bookingRequest(service)
		req.ScheduledDate = "20-05-2030"
		_, err := svc.CreateBooking(context.Background(), userID, req)
		requireAppError(t, err, http.StatusBadRequest)
	})
}

func TestGetMyBookingsOrdering(t *testing.T) {
	repo := newFakeRepository()
	userID, customerID := seedCustomer(repo)
	business := seedBusiness(repo, uuid.New())
	service := seedService(repo, business.ID, 60)

	base := time.Date(2030, time.March, 1, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{
		base.AddDate(0, 0, 5),
		base.AddDate(0, 0, 20),
		base.AddDate(0, 0, 1),
	}
	for i, date := range dates {
		booking := &entity.Booking{
			Base:          entity.Base{ID: uuid.New(), CreatedAt: base.Add(time.Duration(i) * time.Hour)},
			CustomerID:    customerID,
			BusinessID:    business.ID,
			ServiceID:     service.ID,
			ScheduledDate: date,
			ScheduledTime: "09:00",
			Status:        entity.BookingStatusPending,
			PaymentStatus: entity.PaymentStatusPending,
		}
		require.NoError(t, repo.Booking.Create(context.Background(), booking))
	}

	svc := NewBookingService(repo, zap.NewNop())

	resp, err := svc.GetMyBookings(context.Background(), userID, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, resp.Data, 3)
	require.Equal(t, int64(3), resp.Pagination.Total)

	// Most recent scheduled date first.
	require.Equal(t, "2030-03-21", resp.Data[0].ScheduledDate)
	require.Equal(t, "2030-03-06", resp.Data[1].ScheduledDate)
	require.Equal(t, "2030-03-02", resp.Data[2].ScheduledDate)
}

func TestCancelBooking(t *testing.T) {
	repo := newFakeRepository()
	userID, _ := seedCustomer(repo)
	business := seedBusiness(repo, uuid.New())
	service := seedService(repo, business.ID, 60)

	svc := NewBookingService(repo, zap.NewNop())

	created, err := svc.CreateBooking(context.Background(), userID, bookingRequest(service))
	require.NoError(t, err)

	t.Run("foreign booking reads as missing", func(t *testing.T) {
		strangerID, _ := seedCustomer(repo)
		err := svc.CancelBooking(context.Background(), strangerID, created.ID)
		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("pending booking cancels", func(t *testing.T) {
		require.NoError(t, svc.CancelBooking(context.Background(), userID, created.ID))

		bookingID, err := uuid.Parse(created.ID)
		require.NoError(t, err)
		stored, err := repo.Booking.FindByID(context.Background(), bookingID)
		require.NoError(t, err)
		require.Equal(t, entity.BookingStatusCancelled, stored.Status)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		err := svc.CancelBooking(context.Background(), userID, created.ID)
		requireAppError(t, err, http.StatusBadRequest)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	ownerID := uuid.New()
	repo := newFakeRepository()
	userID, _ := seedCustomer(repo)
	business := seedBusiness(repo, ownerID)
	service := seedService(repo, business.ID, 60)

	svc := NewBookingService(repo, zap.NewNop())

	created, err := svc.CreateBooking(context.Background(), userID, bookingRequest(service))
	require.NoError(t, err)

	t.Run("non-owner reads as missing", func(t *testing.T) {
		err := svc.UpdateStatus(context.Background(), uuid.New(), created.ID, &request.UpdateBookingStatusRequest{Status: "CONFIRMED"})
		requireAppError(t, err, http.StatusNotFound)
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		err := svc.UpdateStatus(context.Background(), ownerID, created.ID, &request.UpdateBookingStatusRequest{Status: "COMPLETED"})
		requireAppError(t, err, http.StatusBadRequest)
	})

	t.Run("full lifecycle", func(t *testing.T) {
		for _, status := range []string{"CONFIRMED", "IN_PROGRESS", "COMPLETED"} {
			err := svc.UpdateStatus(context.Background(), ownerID, created.ID, &request.UpdateBookingStatusRequest{Status: status})
			require.NoError(t, err, "transition to %s", status)
		}
	})

	t.Run("completed is terminal", func(t *testing.T) {
		err := svc.UpdateStatus(context.Background(), ownerID, created.ID, &request.UpdateBookingStatusRequest{Status: "CANCELLED"})
		requireAppError(t, err, http.StatusBadRequest)
	})
}
