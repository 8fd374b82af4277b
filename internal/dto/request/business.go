package request

type CreateBusinessRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=100"`
}

type CreateServiceRequest struct {
	BusinessID      string  `json:"business_id" validate:"required,uuid4"`
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gte=5,lte=1440"`
}
