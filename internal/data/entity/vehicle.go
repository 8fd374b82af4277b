package entity

import "github.com/google/uuid"

type Vehicle struct {
	Base
	CustomerID  uuid.UUID `db:"customer_id"`
	Make        string    `db:"make"`
	Model       string    `db:"model"`
	Year        int       `db:"year"`
	PlateNumber string    `db:"plate_number"`
}
