package response

import (
	"time"

	"garagehub/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	CustomerID    string               `json:"customer_id"`
	BusinessID    string               `json:"business_id"`
	ServiceID     string               `json:"service_id"`
	ServiceName   string               `json:"service_name,omitempty"`
	BusinessName  string               `json:"business_name,omitempty"`
	CustomerName  string               `json:"customer_name,omitempty"`
	ScheduledDate string               `json:"scheduled_date"`
	ScheduledTime string               `json:"scheduled_time"`
	Status        entity.BookingStatus `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	Price         float64              `json:"price"`
	TotalAmount   float64              `json:"total_amount"`
	Notes         *string              `json:"notes,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking, serviceName, businessName string) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		CustomerID:    booking.CustomerID.String(),
		BusinessID:    booking.BusinessID.String(),
		ServiceID:     booking.ServiceID.String(),
		ServiceName:   serviceName,
		BusinessName:  businessName,
		ScheduledDate: booking.ScheduledDate.Format("2006-01-02"),
		ScheduledTime: booking.ScheduledTime,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		Price:         booking.Price,
		TotalAmount:   booking.TotalAmount,
		Notes:         booking.Notes,
		CreatedAt:     booking.CreatedAt,
	}
}

func BookingDetailToResponse(detail *entity.BookingDetail) BookingResponse {
	resp := BookingToResponse(&detail.Booking, detail.ServiceName, detail.BusinessName)
	resp.CustomerName = detail.CustomerName
	return resp
}
