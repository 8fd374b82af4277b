package usecase

import (
	"context"

	"garagehub/internal/data/entity"
	"garagehub/internal/data/repository"
	"garagehub/pkg/apperror"

	"github.com/google/uuid"
)

// ownedBusiness is the single ownership check every business-scoped operation
// goes through. A business that exists but belongs to someone else yields the
// same NotFound as a missing one, so callers cannot probe other tenants'
// resources.
func ownedBusiness(ctx context.Context, repo repository.BusinessRepository, userID uuid.UUID, businessID string) (*entity.Business, error) {
	if businessID == "" {
		return nil, apperror.BadRequest("businessId is required")
	}

	id, err := uuid.Parse(businessID)
	if err != nil {
		return nil, apperror.BadRequest("Invalid business ID format")
	}

	business, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.FromDatabase(err)
	}
	if business == nil || business.OwnerID != userID {
		return nil, apperror.NotFound("Business not found")
	}

	return business, nil
}
