package response

// MonthStats describes one calendar month of business activity, each figure
// paired with the change against the preceding month.
type MonthStats struct {
	Bookings        int64   `json:"bookings"`
	BookingsChange  string  `json:"bookings_change"`
	Revenue         float64 `json:"revenue"`
	RevenueChange   string  `json:"revenue_change"`
	UniqueCustomers int64   `json:"unique_customers"`
	CustomersChange string  `json:"customers_change"`
}

type LifetimeStatsResponse struct {
	TotalBookings             int64   `json:"total_bookings"`
	CompletedBookings         int64   `json:"completed_bookings"`
	CompletionRate            float64 `json:"completion_rate"`
	AvgRating                 float64 `json:"avg_rating"`
	RepeatCustomersPercentage float64 `json:"repeat_customers_percentage"`
}

type BusinessStatsResponse struct {
	BusinessID    string                `json:"business_id"`
	CurrentMonth  MonthStats            `json:"current_month"`
	PreviousMonth MonthStats            `json:"previous_month"`
	Lifetime      LifetimeStatsResponse `json:"lifetime"`
}
