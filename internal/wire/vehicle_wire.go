package wire

import (
	"garagehub/internal/adaptor"
	"garagehub/pkg/middleware"
	"garagehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVehicle(
	r chi.Router,
	vehicleHandler *adaptor.VehicleHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(config.JWT.Secret, log))

		// POST /api/vehicles - add a vehicle to the caller's garage
		r.Post("/api/vehicles", vehicleHandler.CreateVehicle)

		// GET /api/vehicles - list the caller's vehicles
		r.Get("/api/vehicles", vehicleHandler.GetMyVehicles)

		// DELETE /api/vehicles/{id} - remove a vehicle
		r.Delete("/api/vehicles/{id}", vehicleHandler.DeleteVehicle)
	})
}
