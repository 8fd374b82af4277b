package entity

import "github.com/google/uuid"

// Customer is the one-to-one extension of a User with role CUSTOMER.
type Customer struct {
	Base
	UserID uuid.UUID `db:"user_id"`
}
