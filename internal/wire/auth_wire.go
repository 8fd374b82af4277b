package wire

import (
	"garagehub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// All auth endpoints are public; the login and signup responses carry the
	// session token for everything else.
	r.Post("/api/auth/signup", authHandler.Signup)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/check-user", authHandler.CheckUser)
}
