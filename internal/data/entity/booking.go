package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusInProgress BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted  BookingStatus = "COMPLETED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

// CanTransitionTo encodes the booking lifecycle. COMPLETED and CANCELLED are
// terminal; CANCELLED is reachable only before work starts.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusInProgress || next == BookingStatusCancelled
	case BookingStatusInProgress:
		return next == BookingStatusCompleted
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

type Booking struct {
	Base
	CustomerID    uuid.UUID     `db:"customer_id"`
	BusinessID    uuid.UUID     `db:"business_id"`
	ServiceID     uuid.UUID     `db:"service_id"`
	ScheduledDate time.Time     `db:"scheduled_date"`
	ScheduledTime string        `db:"scheduled_time"` // HH:MM
	Status        BookingStatus `db:"status"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	Price         float64       `db:"price"`
	TotalAmount   float64       `db:"total_amount"`
	Notes         *string       `db:"notes"`
}

// BookingDetail is a Booking joined with display fields for responses.
type BookingDetail struct {
	Booking
	ServiceName   string `db:"service_name"`
	BusinessName  string `db:"business_name"`
	CustomerName  string `db:"customer_name"`
	CustomerEmail string `db:"customer_email"`
}
