package wire

import (
	"net/http"

	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, auth func(http.Handler) http.Handler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/Movies/", movieHandler.GetMovies)
	r.Get("/movie/{id}", movieHandler.GetMovieByID)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/movies/create", movieHandler.CreateMovie)
		r.Put("/movies/{id}", movieHandler.UpdateMovie)
		r.Delete("/movies/{id}", movieHandler.DeleteMovie)
	})
}
