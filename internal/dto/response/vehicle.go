package response

import (
	"time"

	"garagehub/internal/data/entity"
)

type VehicleResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	PlateNumber string    `json:"plate_number"`
	CreatedAt   time.Time `json:"created_at"`
}

func VehicleToResponse(vehicle *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:          vehicle.ID.String(),
		CustomerID:  vehicle.CustomerID.String(),
		Make:        vehicle.Make,
		Model:       vehicle.Model,
		Year:        vehicle.Year,
		PlateNumber: vehicle.PlateNumber,
		CreatedAt:   vehicle.CreatedAt,
	}
}
