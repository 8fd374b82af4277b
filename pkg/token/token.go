// Package token builds and parses signed session tokens. The token carries a
// snapshot of the user taken at sign-in; role or active-state changes do not
// take effect until the next sign-in.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired session token")

// SessionView is what the rest of the application sees of a session.
type SessionView struct {
	UserID    string
	Role      string
	FirstName string
	LastName  string
	Verified  bool
	Active    bool
	ExpiresAt time.Time
}

type claims struct {
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Verified  bool   `json:"verified"`
	Active    bool   `json:"active"`
	jwt.RegisteredClaims
}

// New signs a session token for the given user snapshot.
func New(view SessionView, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		Role:      view.Role,
		FirstName: view.FirstName,
		LastName:  view.LastName,
		Verified:  view.Verified,
		Active:    view.Active,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   view.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(secret))
}

// Parse verifies the signature and expiry and returns the session view. It
// performs no storage reads.
func Parse(tokenString, secret string) (*SessionView, error) {
	var c claims
	t, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}

	view := &SessionView{
		UserID:    c.Subject,
		Role:      c.Role,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Verified:  c.Verified,
		Active:    c.Active,
	}
	if c.ExpiresAt != nil {
		view.ExpiresAt = c.ExpiresAt.Time
	}

	return view, nil
}
