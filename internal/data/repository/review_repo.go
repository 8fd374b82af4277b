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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error)
	FindByBusinessID(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountByBusinessID(ctx context.Context, businessID uuid.UUID) (int64, error)
	AverageRatingByBusinessID(ctx context.Context, businessID uuid.UUID) (float64, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, customer_id, business_id, booking_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.CustomerID,
		review.BusinessID,
		review.BookingID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("booking_id", review.BookingID.String()),
		)
		return fmt.Errorf("create review for booking %s: %w", review.BookingID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, customer_id, business_id, booking_id, rating, comment, created_at
		FROM reviews
		WHERE booking_id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&review.ID,
		&review.CustomerID,
		&review.BusinessID,
		&review.BookingID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find review by booking ID %s: %w", bookingID.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) FindByBusinessID(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, customer_id, business_id, booking_id, rating, comment, created_at
		FROM reviews
		WHERE business_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by business ID",
			zap.Error(err),
			zap.String("business_id", businessID.String()),
		)
		return nil, fmt.Errorf("find reviews by business ID %s: %w", businessID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.CustomerID,
			&review.BusinessID,
			&review.BookingID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) CountByBusinessID(ctx context.Context, businessID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE business_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, businessID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("count reviews by business ID %s: %w", businessID.String(), err)
	}

	return count, nil
}

// AverageRatingByBusinessID returns 0 when the business has no reviews.
func (r *reviewRepository) AverageRatingByBusinessID(ctx context.Context, businessID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE business_id = $1`

	var avg float64
	err := r.db.QueryRow(ctx, query, businessID).Scan(&avg)
	if err != nil {
		r.log.Error("Failed to average ratings", zap.Error(err))
		return 0, fmt.Errorf("average rating by business ID %s: %w", businessID.String(), err)
	}

	return avg, nil
}
