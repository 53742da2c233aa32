package repository

import (
	"movie-review/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Movie   MovieRepository
	Rating  RatingRepository
	Comment CommentRepository
	Reply   ReplyRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Movie:   NewMovieRepository(db, log),
		Rating:  NewRatingRepository(db, log),
		Comment: NewCommentRepository(db, log),
		Reply:   NewReplyRepository(db, log),
	}
}
