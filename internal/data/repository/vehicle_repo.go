package repository

import (
	"context"
	"fmt"

	"garagehub/internal/data/entity"
	"garagehub/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Vehicle, error)
	Delete(ctx context.Context, id, customerID uuid.UUID) error
}

type vehicleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVehicleRepository(db database.PgxIface, log *zap.Logger) VehicleRepository {
	return &vehicleRepository{
		db:  db,
		log: log.With(zap.String("repository", "vehicle")),
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, customer_id, make, model, year, plate_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.CustomerID,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.PlateNumber,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create vehicle",
			zap.Error(err),
			zap.String("customer_id", vehicle.CustomerID.String()),
		)
		return fmt.Errorf("create vehicle: %w", err)
	}

	return nil
}

func (r *vehicleRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Vehicle, error) {
	query := `
		SELECT id, customer_id, make, model, year, plate_number, created_at, updated_at, deleted_at
		FROM vehicles
		WHERE customer_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to find vehicles by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find vehicles by customer ID %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	var vehicles []*entity.Vehicle
	for rows.Next() {
		var vehicle entity.Vehicle
		err := rows.Scan(
			&vehicle.ID,
			&vehicle.CustomerID,
			&vehicle.Make,
			&vehicle.Model,
			&vehicle.Year,
			&vehicle.PlateNumber,
			&vehicle.CreatedAt,
			&vehicle.UpdatedAt,
			&vehicle.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan vehicle row", zap.Error(err))
			return nil, fmt.Errorf("scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vehicle rows: %w", err)
	}

	return vehicles, nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id, customerID uuid.UUID) error {
	query := `UPDATE vehicles SET deleted_at = NOW() WHERE id = $1 AND customer_id = $2 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, customerID)
	if err != nil {
		r.log.Error("Failed to delete vehicle",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return fmt.Errorf("delete vehicle %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", id.String())
	}

	return nil
}
