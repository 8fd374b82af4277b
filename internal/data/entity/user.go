package entity

type UserRole string

const (
	RoleCustomer          UserRole = "CUSTOMER"
	RoleFreelanceMechanic UserRole = "FREELANCE_MECHANIC"
	RoleGarageOwner       UserRole = "GARAGE_OWNER"
	RoleSparepartsShop    UserRole = "SPAREPARTS_SHOP"
	RoleAdmin             UserRole = "ADMIN"
)

// IsProvider reports whether the role may own a business.
func (r UserRole) IsProvider() bool {
	switch r {
	case RoleFreelanceMechanic, RoleGarageOwner, RoleSparepartsShop:
		return true
	}
	return false
}

// Valid reports whether the role is one the marketplace knows.
func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleFreelanceMechanic, RoleGarageOwner, RoleSparepartsShop, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	Base
	Email        string   `db:"email"`
	Phone        *string  `db:"phone"`
	PasswordHash string   `db:"password"`
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
	IsVerified   bool     `db:"is_verified"`
}
