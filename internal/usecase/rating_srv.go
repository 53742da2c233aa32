package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingService interface {
	SubmitRating(ctx context.Context, movieID string, userID uuid.UUID, req *request.RatingRequest) (*response.RatingResponse, error)
	GetAverageRating(ctx context.Context, movieID string) (float64, error)
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log.With(zap.String("service", "rating")),
	}
}

func (s *ratingService) SubmitRating(ctx context.Context, movieID string, userID uuid.UUID, req *request.RatingRequest) (*response.RatingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit rating validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s", movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		s.log.Error("Failed to check movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	rating := &entity.Rating{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Value:   *req.Rating,
		MovieID: movieUUID,
		UserID:  userID,
	}

	// One rating per (movie, user). The ratings table carries a unique
	// constraint, so concurrent submissions collapse into one winner
	// and the loser surfaces here.
	if err := s.repo.Rating.Create(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrDuplicateRating) {
			return nil, fmt.Errorf("you have already rated this movie")
		}
		s.log.Error("Failed to create rating",
			zap.Error(err),
			zap.String("movie_id", movieID),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("create rating: %w", err)
	}

	s.log.Info("Rating submitted",
		zap.String("rating_id", rating.ID.String()),
		zap.String("movie_id", movieID),
		zap.String("user_id", userID.String()),
		zap.Float64("value", rating.Value))

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

// GetAverageRating returns the mean of all ratings for the movie, 0 when
// the movie has none.
func (s *ratingService) GetAverageRating(ctx context.Context, movieID string) (float64, error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return 0, fmt.Errorf("invalid movie ID format %s", movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		s.log.Error("Failed to check movie", zap.Error(err), zap.String("movie_id", movieID))
		return 0, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return 0, fmt.Errorf("movie not found")
	}

	average, err := s.repo.Rating.AverageByMovieID(ctx, movieUUID)
	if err != nil {
		s.log.Error("Failed to get average rating", zap.Error(err), zap.String("movie_id", movieID))
		return 0, fmt.Errorf("get average rating: %w", err)
	}

	return average, nil
}
