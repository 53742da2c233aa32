package wire

import (
	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public routes (no auth middleware)
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)
}
