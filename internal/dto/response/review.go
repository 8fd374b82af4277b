package response

import (
	"time"

	"garagehub/internal/data/entity"
)

type ReviewResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	BusinessID string    `json:"business_id"`
	BookingID  string    `json:"booking_id"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID.String(),
		CustomerID: review.CustomerID.String(),
		BusinessID: review.BusinessID.String(),
		BookingID:  review.BookingID.String(),
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}
}
