package repository

import (
	"context"
	"fmt"

	"garagehub/internal/data/entity"
	"garagehub/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error)
	Update(ctx context.Context, business *entity.Business) error
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64, reviewCount int) error
}

type businessRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBusinessRepository(db database.PgxIface, log *zap.Logger) BusinessRepository {
	return &businessRepository{
		db:  db,
		log: log.With(zap.String("repository", "business")),
	}
}

const businessColumns = `id, owner_id, name, type, description, city,
		       is_active, is_verified, rating, review_count,
		       created_at, updated_at, deleted_at`

func (r *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	query := `
		INSERT INTO businesses (id, owner_id, name, type, description, city,
		                        is_active, is_verified, rating, review_count,
		                        created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		business.ID,
		business.OwnerID,
		business.Name,
		business.Type,
		business.Description,
		business.City,
		business.IsActive,
		business.IsVerified,
		business.Rating,
		business.ReviewCount,
		business.CreatedAt,
		business.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create business",
			zap.Error(err),
			zap.String("owner_id", business.OwnerID.String()),
			zap.String("name", business.Name),
		)
		return fmt.Errorf("create business %s: %w", business.Name, err)
	}

	return nil
}

func (r *businessRepository) scanBusiness(row pgx.Row) (*entity.Business, error) {
	var business entity.Business
	err := row.Scan(
		&business.ID,
		&business.OwnerID,
		&business.Name,
		&business.Type,
		&business.Description,
		&business.City,
		&business.IsActive,
		&business.IsVerified,
		&business.Rating,
		&business.ReviewCount,
		&business.CreatedAt,
		&business.UpdatedAt,
		&business.DeletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE id = $1 AND deleted_at IS NULL
	`

	business, err := r.scanBusiness(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find business by ID",
			zap.Error(err),
			zap.String("business_id", id.String()),
		)
		return nil, fmt.Errorf("find business by ID %s: %w", id.String(), err)
	}

	return business, nil
}

func (r *businessRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE owner_id = $1 AND deleted_at IS NULL
	`

	business, err := r.scanBusiness(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		r.log.Error("Failed to find business by owner ID",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find business by owner ID %s: %w", ownerID.String(), err)
	}

	return business, nil
}

func (r *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	query := `
		UPDATE businesses
		SET name = $2, description = $3, city = $4, is_active = $5,
		    updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		business.ID,
		business.Name,
		business.Description,
		business.City,
		business.IsActive,
		business.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update business",
			zap.Error(err),
			zap.String("business_id", business.ID.String()),
		)
		return fmt.Errorf("update business %s: %w", business.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("business %s not found", business.ID.String())
	}

	return nil
}

func (r *businessRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	query := `UPDATE businesses SET is_verified = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, verified)
	if err != nil {
		r.log.Error("Failed to set business verification",
			zap.Error(err),
			zap.String("business_id", id.String()),
		)
		return fmt.Errorf("set business %s verified: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("business %s not found", id.String())
	}

	return nil
}

func (r *businessRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64, reviewCount int) error {
	query := `UPDATE businesses SET rating = $2, review_count = $3, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, rating, reviewCount)
	if err != nil {
		r.log.Error("Failed to update business rating",
			zap.Error(err),
			zap.String("business_id", id.String()),
		)
		return fmt.Errorf("update business %s rating: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("business %s not found", id.String())
	}

	return nil
}
