package request

type CreateBookingRequest struct {
	ServiceID     string  `json:"service_id" validate:"required,uuid4"`
	BusinessID    string  `json:"business_id" validate:"required,uuid4"`
	ScheduledDate string  `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	ScheduledTime string  `json:"scheduled_time" validate:"required,datetime=15:04"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED IN_PROGRESS COMPLETED CANCELLED"`
}
