package request

type CreateVehicleRequest struct {
	Make        string `json:"make" validate:"required,min=1,max=50"`
	Model       string `json:"model" validate:"required,min=1,max=50"`
	Year        int    `json:"year" validate:"required,gte=1950,lte=2100"`
	PlateNumber string `json:"plate_number" validate:"required,min=2,max=20"`
}
