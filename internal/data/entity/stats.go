package entity

import (
	"time"

	"github.com/google/uuid"
)

// MonthlyBucket holds the per-calendar-month aggregates for a business.
type MonthlyBucket struct {
	Bookings        int64
	Revenue         float64
	UniqueCustomers int64
}

// LifetimeStats holds whole-history aggregates for a business.
type LifetimeStats struct {
	TotalBookings     int64
	CompletedBookings int64
	DistinctCustomers int64
	RepeatCustomers   int64
}

// CustomerSummary is a row of a business's customer list.
type CustomerSummary struct {
	CustomerID   uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	BookingCount int64
	LastBooking  time.Time
}
