package entity

import "github.com/google/uuid"

// Service is an offering of a Business that customers book.
type Service struct {
	Base
	BusinessID      uuid.UUID `db:"business_id"`
	Name            string    `db:"name"`
	Description     *string   `db:"description"`
	Price           float64   `db:"price"`
	DurationMinutes int       `db:"duration_minutes"`
	IsActive        bool      `db:"is_active"`
}
