package middleware

import (
	"net/http"
	"strings"

	"garagehub/pkg/token"
	"garagehub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthSession validates the signed session token. It checks signature and
// expiry only; the identity snapshot inside the token is trusted as-is until
// the next sign-in.
func AuthSession(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			view, err := token.Parse(parts[1], secret)
			if err != nil {
				logger.Warn("Invalid or expired session token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			if !view.Active {
				utils.ResponseUnauthorized(w, "Account is deactivated")
				return
			}

			userID, err := uuid.Parse(view.UserID)
			if err != nil {
				logger.Warn("Malformed subject in session token", zap.String("sub", view.UserID))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, view.Role)
			ctx = utils.SetTokenContext(ctx, parts[1])

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on the caller's role from the session snapshot.
// Every role check in the application goes through here.
func RequireRole(logger *zap.Logger, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !allowed[role] {
				logger.Warn("Role check failed",
					zap.String("role", role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
