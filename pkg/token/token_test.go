package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	view := SessionView{
		UserID:    "f2c1d3f0-8a26-4c8c-9a7a-0f1f2e3d4c5b",
		Role:      "GARAGE_OWNER",
		FirstName: "Agus",
		LastName:  "Santoso",
		Verified:  true,
		Active:    true,
	}

	signed, err := New(view, "secret", time.Hour)
	require.NoError(t, err)

	parsed, err := Parse(signed, "secret")
	require.NoError(t, err)
	require.Equal(t, view.UserID, parsed.UserID)
	require.Equal(t, view.Role, parsed.Role)
	require.Equal(t, view.FirstName, parsed.FirstName)
	require.True(t, parsed.Verified)
	require.True(t, parsed.Active)
	require.WithinDuration(t, time.Now().Add(time.Hour), parsed.ExpiresAt, 5*time.Second)
}

func TestTokenWrongSecret(t *testing.T) {
	signed, err := New(SessionView{UserID: "abc", Active: true}, "secret", time.Hour)
	require.NoError(t, err)

	_, err = Parse(signed, "other-secret")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	signed, err := New(SessionView{UserID: "abc", Active: true}, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(signed, "secret")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	_, err := Parse("not-a-token", "secret")
	require.ErrorIs(t, err, ErrInvalidToken)
}
