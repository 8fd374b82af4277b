package response

import (
	"time"

	"garagehub/internal/data/entity"
)

type BusinessResponse struct {
	ID          string              `json:"id"`
	OwnerID     string              `json:"owner_id"`
	Name        string              `json:"name"`
	Type        entity.BusinessType `json:"type"`
	Description *string             `json:"description,omitempty"`
	City        *string             `json:"city,omitempty"`
	IsActive    bool                `json:"is_active"`
	IsVerified  bool                `json:"is_verified"`
	Rating      float64             `json:"rating"`
	ReviewCount int                 `json:"review_count"`
	CreatedAt   time.Time           `json:"created_at"`
}

type ServiceResponse struct {
	ID              string    `json:"id"`
	BusinessID      string    `json:"business_id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

type CustomerSummaryResponse struct {
	CustomerID   string `json:"customer_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	BookingCount int64  `json:"booking_count"`
	LastBooking  string `json:"last_booking"`
}

// Helper converters
func BusinessToResponse(business *entity.Business) BusinessResponse {
	return BusinessResponse{
		ID:          business.ID.String(),
		OwnerID:     business.OwnerID.String(),
		Name:        business.Name,
		Type:        business.Type,
		Description: business.Description,
		City:        business.City,
		IsActive:    business.IsActive,
		IsVerified:  business.IsVerified,
		Rating:      business.Rating,
		ReviewCount: business.ReviewCount,
		CreatedAt:   business.CreatedAt,
	}
}

func ServiceToResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:              service.ID.String(),
		BusinessID:      service.BusinessID.String(),
		Name:            service.Name,
		Description:     service.Description,
		Price:           service.Price,
		DurationMinutes: service.DurationMinutes,
		IsActive:        service.IsActive,
		CreatedAt:       service.CreatedAt,
	}
}

func CustomerSummaryToResponse(summary *entity.CustomerSummary) CustomerSummaryResponse {
	return CustomerSummaryResponse{
		CustomerID:   summary.CustomerID.String(),
		FirstName:    summary.FirstName,
		LastName:     summary.LastName,
		Email:        summary.Email,
		BookingCount: summary.BookingCount,
		LastBooking:  summary.LastBooking.Format("2006-01-02"),
	}
}
