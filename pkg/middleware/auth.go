package middleware

import (
	"net/http"
	"strings"

	"movie-review/internal/data/repository"
	"movie-review/pkg/token"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

// RequireAuth resolves the caller identity from the bearer token.
// The subject username is looked up on every request, so tokens for
// deleted accounts stop working immediately.
func RequireAuth(tokens *token.Service, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
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

			// Validate signature and expiry
			username, err := tokens.Validate(parts[1])
			if err != nil {
				logger.Warn("Token validation failed", zap.Error(err))
				utils.ResponseUnauthorized(w, "Could not validate credentials")
				return
			}

			// Resolve the subject to a user
			user, err := userRepo.FindByUsername(r.Context(), username)
			if err != nil {
				logger.Error("Failed to resolve token subject",
					zap.String("username", username),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				logger.Warn("Token subject no longer exists", zap.String("username", username))
				utils.ResponseUnauthorized(w, "Could not validate credentials")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
