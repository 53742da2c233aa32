package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicateRating is returned when the (movie_id, user_id) pair is
// already rated. The uniqueness is enforced by a database constraint, so
// concurrent submissions cannot slip past an existence pre-check.
var ErrDuplicateRating = errors.New("rating already exists for this movie and user")

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	AverageByMovieID(ctx context.Context, movieID uuid.UUID) (float64, error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (id, value, movie_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		rating.ID,
		rating.Value,
		rating.MovieID,
		rating.UserID,
		rating.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.log.Warn("Duplicate rating rejected",
				zap.String("movie_id", rating.MovieID.String()),
				zap.String("user_id", rating.UserID.String()),
			)
			return ErrDuplicateRating
		}

		r.log.Error("Failed to create rating",
			zap.Error(err),
			zap.String("movie_id", rating.MovieID.String()),
			zap.String("user_id", rating.UserID.String()),
		)
		return fmt.Errorf("create rating for movie %s by user %s: %w",
			rating.MovieID.String(), rating.UserID.String(), err)
	}

	return nil
}

// AverageByMovieID returns the arithmetic mean of all rating values for
// the movie, or 0 when the movie has no ratings.
func (r *ratingRepository) AverageByMovieID(ctx context.Context, movieID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(AVG(value), 0) FROM ratings WHERE movie_id = $1`

	var average float64
	err := r.db.QueryRow(ctx, query, movieID).Scan(&average)
	if err != nil {
		r.log.Error("Failed to compute average rating",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return 0, fmt.Errorf("average rating for movie %s: %w", movieID.String(), err)
	}

	return average, nil
}
