package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFromDatabase(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantField  string
	}{
		{
			name:       "no rows",
			err:        pgx.ErrNoRows,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "wrapped no rows",
			err:        fmt.Errorf("find user: %w", pgx.ErrNoRows),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "duplicate email",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantStatus: http.StatusConflict,
			wantField:  "email",
		},
		{
			name:       "duplicate phone",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "users_phone_key"},
			wantStatus: http.StatusConflict,
			wantField:  "phone",
		},
		{
			name:       "second business for owner",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "businesses_owner_id_key"},
			wantStatus: http.StatusConflict,
			wantField:  "ownerId",
		},
		{
			name:       "second review for booking",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "reviews_booking_id_key"},
			wantStatus: http.StatusConflict,
			wantField:  "bookingId",
		},
		{
			name:       "foreign key violation",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "bookings_service_id_fkey"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "anything else",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromDatabase(tt.err)
			require.NotNil(t, appErr)
			require.Equal(t, tt.wantStatus, appErr.Status)
			require.Equal(t, tt.wantField, appErr.Field)
		})
	}

	require.Nil(t, FromDatabase(nil))
}

func TestFromValidation(t *testing.T) {
	appErr := FromValidation(map[string]string{"email": "email is invalid"})
	require.Equal(t, http.StatusBadRequest, appErr.Status)
	require.Equal(t, "VALIDATION_FAILED", appErr.Code)
	require.Equal(t, "email", appErr.Field)

	appErr = FromValidation(nil)
	require.Equal(t, http.StatusBadRequest, appErr.Status)
}
