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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindDetailsByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.BookingDetail, error)
	CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error)
	FindRecentByBusinessID(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.BookingDetail, error)
	FindCustomersByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entity.CustomerSummary, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, customer_id, business_id, service_id,
		                      scheduled_date, scheduled_time, status, payment_status,
		                      price, total_amount, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.CustomerID,
		booking.BusinessID,
		booking.ServiceID,
		booking.ScheduledDate,
		booking.ScheduledTime,
		booking.Status,
		booking.PaymentStatus,
		booking.Price,
		booking.TotalAmount,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer_id", booking.CustomerID.String()),
			zap.String("business_id", booking.BusinessID.String()),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, customer_id, business_id, service_id, scheduled_date,
		       scheduled_time, status, payment_status, price, total_amount,
		       notes, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.BusinessID,
		&booking.ServiceID,
		&booking.ScheduledDate,
		&booking.ScheduledTime,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.Price,
		&booking.TotalAmount,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

const bookingDetailQuery = `
		SELECT b.id, b.customer_id, b.business_id, b.service_id,
		       b.scheduled_date, b.scheduled_time, b.status, b.payment_status,
		       b.price, b.total_amount, b.notes, b.created_at, b.updated_at,
		       s.name AS service_name,
		       bu.name AS business_name,
		       u.first_name || ' ' || u.last_name AS customer_name,
		       u.email AS customer_email
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		JOIN businesses bu ON bu.id = b.business_id
		JOIN customers c ON c.id = b.customer_id
		JOIN users u ON u.id = c.user_id
`

func (r *bookingRepository) scanDetails(rows pgx.Rows) ([]*entity.BookingDetail, error) {
	defer rows.Close()

	var details []*entity.BookingDetail
	for rows.Next() {
		var d entity.BookingDetail
		err := rows.Scan(
			&d.ID,
			&d.CustomerID,
			&d.BusinessID,
			&d.ServiceID,
			&d.ScheduledDate,
			&d.ScheduledTime,
			&d.Status,
			&d.PaymentStatus,
			&d.Price,
			&d.TotalAmount,
			&d.Notes,
			&d.CreatedAt,
			&d.UpdatedAt,
			&d.ServiceName,
			&d.BusinessName,
			&d.CustomerName,
			&d.CustomerEmail,
		)
		if err != nil {
			r.log.Error("Failed to scan booking detail row", zap.Error(err))
			return nil, fmt.Errorf("scan booking detail row: %w", err)
		}
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking detail rows: %w", err)
	}

	return details, nil
}

// FindDetailsByCustomerID returns the customer's bookings most recent first.
// created_at breaks scheduled_date ties so the order stays deterministic.
func (r *bookingRepository) FindDetailsByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.BookingDetail, error) {
	query := bookingDetailQuery + `
		WHERE b.customer_id = $1
		ORDER BY b.scheduled_date DESC, b.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find bookings by customer ID %s: %w", customerID.String(), err)
	}

	return r.scanDetails(rows)
}

func (r *bookingRepository) CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE customer_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, customerID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return 0, fmt.Errorf("count bookings by customer ID %s: %w", customerID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindRecentByBusinessID(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.BookingDetail, error) {
	query := bookingDetailQuery + `
		WHERE b.business_id = $1
		ORDER BY b.scheduled_date DESC, b.created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, businessID, limit)
	if err != nil {
		r.log.Error("Failed to find bookings by business ID",
			zap.Error(err),
			zap.String("business_id", businessID.String()),
		)
		return nil, fmt.Errorf("find bookings by business ID %s: %w", businessID.String(), err)
	}

	return r.scanDetails(rows)
}

// FindCustomersByBusinessID lists the distinct customers who booked with the
// business, with booking counts, most recently seen first.
func (r *bookingRepository) FindCustomersByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*entity.CustomerSummary, error) {
	query := `
		SELECT b.customer_id, u.first_name, u.last_name, u.email,
		       COUNT(*) AS booking_count, MAX(b.scheduled_date) AS last_booking
		FROM bookings b
		JOIN customers c ON c.id = b.customer_id
		JOIN users u ON u.id = c.user_id
		WHERE b.business_id = $1
		GROUP BY b.customer_id, u.first_name, u.last_name, u.email
		ORDER BY last_booking DESC
	`

	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		r.log.Error("Failed to find customers by business ID",
			zap.Error(err),
			zap.String("business_id", businessID.String()),
		)
		return nil, fmt.Errorf("find customers by business ID %s: %w", businessID.String(), err)
	}
	defer rows.Close()

	var customers []*entity.CustomerSummary
	for rows.Next() {
		var c entity.CustomerSummary
		err := rows.Scan(
			&c.CustomerID,
			&c.FirstName,
			&c.LastName,
			&c.Email,
			&c.BookingCount,
			&c.LastBooking,
		)
		if err != nil {
			r.log.Error("Failed to scan customer summary row", zap.Error(err))
			return nil, fmt.Errorf("scan customer summary row: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer summary rows: %w", err)
	}

	return customers, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}
