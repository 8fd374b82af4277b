package entity

import "github.com/google/uuid"

type BusinessType string

const (
	BusinessTypeGarage            BusinessType = "GARAGE"
	BusinessTypeFreelanceMechanic BusinessType = "FREELANCE_MECHANIC"
	BusinessTypeSparepartsShop    BusinessType = "SPAREPARTS_SHOP"
)

// BusinessTypeForRole maps a provider role to its business type.
func BusinessTypeForRole(role UserRole) (BusinessType, bool) {
	switch role {
	case RoleGarageOwner:
		return BusinessTypeGarage, true
	case RoleFreelanceMechanic:
		return BusinessTypeFreelanceMechanic, true
	case RoleSparepartsShop:
		return BusinessTypeSparepartsShop, true
	}
	return "", false
}

type Business struct {
	Base
	OwnerID     uuid.UUID    `db:"owner_id"`
	Name        string       `db:"name"`
	Type        BusinessType `db:"type"`
	Description *string      `db:"description"`
	City        *string      `db:"city"`
	IsActive    bool         `db:"is_active"`
	IsVerified  bool         `db:"is_verified"`
	Rating      float64      `db:"rating"`
	ReviewCount int          `db:"review_count"`
}
