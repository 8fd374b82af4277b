package repository

import (
	"context"
	"fmt"
	"time"

	"garagehub/internal/data/entity"
	"garagehub/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StatsRepository interface {
	MonthlyBucket(ctx context.Context, businessID uuid.UUID, from, to time.Time) (*entity.MonthlyBucket, error)
	LifetimeStats(ctx context.Context, businessID uuid.UUID) (*entity.LifetimeStats, error)
}

type statsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStatsRepository(db database.PgxIface, log *zap.Logger) StatsRepository {
	return &statsRepository{
		db:  db,
		log: log.With(zap.String("repository", "stats")),
	}
}

// MonthlyBucket aggregates bookings with scheduled_date in [from, to).
// Revenue counts COMPLETED bookings only; booking and customer counts cover
// every status.
func (r *statsRepository) MonthlyBucket(ctx context.Context, businessID uuid.UUID, from, to time.Time) (*entity.MonthlyBucket, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(total_amount) FILTER (WHERE status = 'COMPLETED'), 0),
		       COUNT(DISTINCT customer_id)
		FROM bookings
		WHERE business_id = $1
		  AND scheduled_date >= $2
		  AND scheduled_date < $3
	`

	var bucket entity.MonthlyBucket
	err := r.db.QueryRow(ctx, query, businessID, from, to).Scan(
		&bucket.Bookings,
		&bucket.Revenue,
		&bucket.UniqueCustomers,
	)
	if err != nil {
		r.log.Error("Failed to aggregate monthly bucket",
			zap.Error(err),
			zap.String("business_id", businessID.String()),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("monthly bucket for business %s: %w", businessID.String(), err)
	}

	return &bucket, nil
}

func (r *statsRepository) LifetimeStats(ctx context.Context, businessID uuid.UUID) (*entity.LifetimeStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'COMPLETED'),
		       COUNT(DISTINCT customer_id),
		       (SELECT COUNT(*) FROM (
		           SELECT customer_id
		           FROM bookings
		           WHERE business_id = $1
		           GROUP BY customer_id
		           HAVING COUNT(*) > 1
		       ) repeats)
		FROM bookings
		WHERE business_id = $1
	`

	var stats entity.LifetimeStats
	err := r.db.QueryRow(ctx, query, businessID).Scan(
		&stats.TotalBookings,
		&stats.CompletedBookings,
		&stats.DistinctCustomers,
		&stats.RepeatCustomers,
	)
	if err != nil {
		r.log.Error("Failed to aggregate lifetime stats",
			zap.Error(err),
			zap.String("business_id", businessID.String()),
		)
		return nil, fmt.Errorf("lifetime stats for business %s: %w", businessID.String(), err)
	}

	return &stats, nil
}
