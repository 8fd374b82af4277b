package request

type SignupRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6"`
	FirstName string  `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string  `json:"last_name" validate:"required,min=1,max=50"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Role      string  `json:"role,omitempty" validate:"omitempty,oneof=CUSTOMER FREELANCE_MECHANIC GARAGE_OWNER SPAREPARTS_SHOP"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
}

type CheckUserRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}
