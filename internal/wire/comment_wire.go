package wire

import (
	"net/http"

	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler, auth func(http.Handler) http.Handler) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/movies/{id}/comments", commentHandler.GetMovieComments)
	r.Get("/comments/{id}/replies", commentHandler.GetCommentReplies)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/movies/{id}/create_comment", commentHandler.CreateComment)
		// A reply is a one-level nested comment
		r.Post("/comments/{id}/comments", commentHandler.CreateReply)
	})
}
