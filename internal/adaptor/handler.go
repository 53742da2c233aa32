package adaptor

import (
	"movie-review/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Movie   *MovieHandler
	Comment *CommentHandler
	Rating  *RatingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Movie:   NewMovieHandler(service.Movie, log),
		Comment: NewCommentHandler(service.Comment, log),
		Rating:  NewRatingHandler(service.Rating, log),
	}
}
