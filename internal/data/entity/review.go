package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	CustomerID uuid.UUID `db:"customer_id"`
	BusinessID uuid.UUID `db:"business_id"`
	BookingID  uuid.UUID `db:"booking_id"`
	Rating     int       `db:"rating"` // 1-5
	Comment    *string   `db:"comment"`
}
