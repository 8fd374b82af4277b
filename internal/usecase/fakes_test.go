package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"garagehub/internal/data/entity"
	"garagehub/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository substitutes. Each fake keeps just enough behavior for
// the services to run end to end without a database.

func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		User:     &fakeUserRepo{users: map[uuid.UUID]*entity.User{}},
		Customer: &fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{}},
		Vehicle:  &fakeVehicleRepo{vehicles: map[uuid.UUID]*entity.Vehicle{}},
		Business: &fakeBusinessRepo{businesses: map[uuid.UUID]*entity.Business{}},
		Service:  &fakeServiceRepo{services: map[uuid.UUID]*entity.Service{}},
		Booking:  &fakeBookingRepo{bookings: map[uuid.UUID]*entity.Booking{}},
		Review:   &fakeReviewRepo{reviews: map[uuid.UUID]*entity.Review{}},
		Stats:    &fakeStatsRepo{buckets: map[string]*entity.MonthlyBucket{}},
	}
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByIdentifier(_ context.Context, identifier string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == identifier {
			return user, nil
		}
		if user.Phone != nil && *user.Phone == identifier {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
	createErr error
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	return customer, nil
}

func (f *fakeCustomerRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Customer, error) {
	for _, customer := range f.customers {
		if customer.UserID == userID {
			return customer, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.customers, id)
	return nil
}

type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*entity.Vehicle
}

func (f *fakeVehicleRepo) Create(_ context.Context, vehicle *entity.Vehicle) error {
	f.vehicles[vehicle.ID] = vehicle
	return nil
}

func (f *fakeVehicleRepo) FindByCustomerID(_ context.Context, customerID uuid.UUID) ([]*entity.Vehicle, error) {
	var result []*entity.Vehicle
	for _, vehicle := range f.vehicles {
		if vehicle.CustomerID == customerID {
			result = append(result, vehicle)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeVehicleRepo) Delete(_ context.Context, id, customerID uuid.UUID) error {
	vehicle, ok := f.vehicles[id]
	if !ok || vehicle.CustomerID != customerID {
		return errors.New("vehicle not found")
	}
	delete(f.vehicles, id)
	return nil
}

type fakeBusinessRepo struct {
	businesses map[uuid.UUID]*entity.Business
}

func (f *fakeBusinessRepo) Create(_ context.Context, business *entity.Business) error {
	f.businesses[business.ID] = business
	return nil
}

func (f *fakeBusinessRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Business, error) {
	business, ok := f.businesses[id]
	if !ok {
		return nil, nil
	}
	return business, nil
}

func (f *fakeBusinessRepo) FindByOwnerID(_ context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	for _, business := range f.businesses {
		if business.OwnerID == ownerID {
			return business, nil
		}
	}
	return nil, nil
}

func (f *fakeBusinessRepo) Update(_ context.Context, business *entity.Business) error {
	f.businesses[business.ID] = business
	return nil
}

func (f *fakeBusinessRepo) SetVerified(_ context.Context, id uuid.UUID, verified bool) error {
	business, ok := f.businesses[id]
	if !ok {
		return errors.New("business not found")
	}
	business.IsVerified = verified
	return nil
}

func (f *fakeBusinessRepo) UpdateRating(_ context.Context, id uuid.UUID, rating float64, reviewCount int) error {
	business, ok := f.businesses[id]
	if !ok {
		return errors.New("business not found")
	}
	business.Rating = rating
	business.ReviewCount = reviewCount
	return nil
}

type fakeServiceRepo struct {
	services map[uuid.UUID]*entity.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, service *entity.Service) error {
	f.services[service.ID] = service
	return nil
}

func (f *fakeServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Service, error) {
	service, ok := f.services[id]
	if !ok {
		return nil, nil
	}
	return service, nil
}

func (f *fakeServiceRepo) FindByBusinessID(_ context.Context, businessID uuid.UUID) ([]*entity.Service, error) {
	var result []*entity.Service
	for _, service := range f.services {
		if service.BusinessID == businessID {
			result = append(result, service)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, service *entity.Service) error {
	f.services[service.ID] = service
	return nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.services, id)
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	return booking, nil
}

func (f *fakeBookingRepo) byCustomer(customerID uuid.UUID) []*entity.Booking {
	var result []*entity.Booking
	for _, booking := range f.bookings {
		if booking.CustomerID == customerID {
			result = append(result, booking)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].ScheduledDate.Equal(result[j].ScheduledDate) {
			return result[i].ScheduledDate.After(result[j].ScheduledDate)
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (f *fakeBookingRepo) FindDetailsByCustomerID(_ context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.BookingDetail, error) {
	all := f.byCustomer(customerID)
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}

	details := make([]*entity.BookingDetail, len(all))
	for i, booking := range all {
		details[i] = &entity.BookingDetail{Booking: *booking}
	}
	return details, nil
}

func (f *fakeBookingRepo) CountByCustomerID(_ context.Context, customerID uuid.UUID) (int64, error) {
	return int64(len(f.byCustomer(customerID))), nil
}

func (f *fakeBookingRepo) FindRecentByBusinessID(_ context.Context, businessID uuid.UUID, limit int) ([]*entity.BookingDetail, error) {
	var result []*entity.Booking
	for _, booking := range f.bookings {
		if booking.BusinessID == businessID {
			result = append(result, booking)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit < len(result) {
		result = result[:limit]
	}

	details := make([]*entity.BookingDetail, len(result))
	for i, booking := range result {
		details[i] = &entity.BookingDetail{Booking: *booking}
	}
	return details, nil
}

func (f *fakeBookingRepo) FindCustomersByBusinessID(_ context.Context, businessID uuid.UUID) ([]*entity.CustomerSummary, error) {
	counts := map[uuid.UUID]*entity.CustomerSummary{}
	for _, booking := range f.bookings {
		if booking.BusinessID != businessID {
			continue
		}
		summary, ok := counts[booking.CustomerID]
		if !ok {
			summary = &entity.CustomerSummary{CustomerID: booking.CustomerID}
			counts[booking.CustomerID] = summary
		}
		summary.BookingCount++
		if booking.ScheduledDate.After(summary.LastBooking) {
			summary.LastBooking = booking.ScheduledDate
		}
	}

	result := make([]*entity.CustomerSummary, 0, len(counts))
	for _, summary := range counts {
		result = append(result, summary)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LastBooking.After(result[j].LastBooking)
	})
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	booking, ok := f.bookings[bookingID]
	if !ok {
		return errors.New("booking not found")
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return nil
}

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*entity.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	f.reviews[review.ID] = review
	return nil
}

func (f *fakeReviewRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	for _, review := range f.reviews {
		if review.BookingID == bookingID {
			return review, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) byBusiness(businessID uuid.UUID) []*entity.Review {
	var result []*entity.Review
	for _, review := range f.reviews {
		if review.BusinessID == businessID {
			result = append(result, review)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (f *fakeReviewRepo) FindByBusinessID(_ context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	all := f.byBusiness(businessID)
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeReviewRepo) CountByBusinessID(_ context.Context, businessID uuid.UUID) (int64, error) {
	return int64(len(f.byBusiness(businessID))), nil
}

func (f *fakeReviewRepo) AverageRatingByBusinessID(_ context.Context, businessID uuid.UUID) (float64, error) {
	all := f.byBusiness(businessID)
	if len(all) == 0 {
		return 0, nil
	}
	sum := 0
	for _, review := range all {
		sum += review.Rating
	}
	return float64(sum) / float64(len(all)), nil
}

type fakeStatsRepo struct {
	buckets  map[string]*entity.MonthlyBucket // keyed by from.Format("2006-01")
	lifetime *entity.LifetimeStats
}

func (f *fakeStatsRepo) MonthlyBucket(_ context.Context, _ uuid.UUID, from, _ time.Time) (*entity.MonthlyBucket, error) {
	if bucket, ok := f.buckets[from.Format("2006-01")]; ok {
		return bucket, nil
	}
	return &entity.MonthlyBucket{}, nil
}

func (f *fakeStatsRepo) LifetimeStats(_ context.Context, _ uuid.UUID) (*entity.LifetimeStats, error) {
	if f.lifetime != nil {
		return f.lifetime, nil
	}
	return &entity.LifetimeStats{}, nil
}
