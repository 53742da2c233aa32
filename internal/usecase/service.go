package usecase

import (
	"movie-review/internal/data/repository"
	"movie-review/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Movie   MovieService
	Comment CommentService
	Rating  RatingService
}

func NewService(repo *repository.Repository, tokens *token.Service, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, tokens, log),
		Movie:   NewMovieService(repo, log),
		Comment: NewCommentService(repo, log),
		Rating:  NewRatingService(repo, log),
	}
}
