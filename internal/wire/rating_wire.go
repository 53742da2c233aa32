package wire

import (
	"net/http"

	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRating(r chi.Router, ratingHandler *adaptor.RatingHandler, auth func(http.Handler) http.Handler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/movie/rating/{id}", ratingHandler.GetMovieRating)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Post("/movie/{id}/create_rating", ratingHandler.CreateRating)
}
