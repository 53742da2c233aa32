package usecase

import (
	"context"
	"testing"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRatingService(movieRepo *MockMovieRepository, ratingRepo *MockRatingRepository) RatingService {
	repo := &repository.Repository{
		Movie:  movieRepo,
		Rating: ratingRepo,
	}
	return NewRatingService(repo, zap.NewNop())
}

func ratingRequest(value float64) *request.RatingRequest {
	return &request.RatingRequest{Rating: &value}
}

func TestSubmitRating(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	ratingRepo := new(MockRatingRepository)
	svc := newRatingService(movieRepo, ratingRepo)

	movieID := uuid.New()
	userID := uuid.New()
	movie := &entity.Movie{Base: entity.Base{ID: movieID}, Title: "T"}

	movieRepo.On("FindByID", mock.Anything, movieID).Return(movie, nil)
	ratingRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.Rating) bool {
		return r.MovieID == movieID && r.UserID == userID && r.Value == 5
	})).Return(nil)

	resp, err := svc.SubmitRating(context.Background(), movieID.String(), userID, ratingRequest(5))
	require.NoError(t, err)

	assert.Equal(t, float64(5), resp.Rating)
	assert.Equal(t, movieID.String(), resp.MovieID)
	assert.Equal(t, userID.String(), resp.UserID)

	ratingRepo.AssertExpectations(t)
}

func TestSubmitRatingMovieNotFound(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	ratingRepo := new(MockRatingRepository)
	svc := newRatingService(movieRepo, ratingRepo)

	movieID := uuid.New()
	movieRepo.On("FindByID", mock.Anything, movieID).Return(nil, nil)

	_, err := svc.SubmitRating(context.Background(), movieID.String(), uuid.New(), ratingRequest(5))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	ratingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitRatingDuplicate(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	ratingRepo := new(MockRatingRepository)
	svc := newRatingService(movieRepo, ratingRepo)

	movieID := uuid.New()
	movie := &entity.Movie{Base: entity.Base{ID: movieID}}

	movieRepo.On("FindByID", mock.Anything, movieID).Return(movie, nil)
	// Second submission trips the unique constraint at the store
	ratingRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateRating)

	_, err := svc.SubmitRating(context.Background(), movieID.String(), uuid.New(), ratingRequest(7))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already rated")
}

func TestSubmitRatingOutOfRange(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	ratingRepo := new(MockRatingRepository)
	svc := newRatingService(movieRepo, ratingRepo)

	_, err := svc.SubmitRating(context.Background(), uuid.New().String(), uuid.New(), ratingRequest(11))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	movieRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestSubmitRatingMissingValue(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	ratingRepo := new(MockRatingRepository)
	svc := newRatingService(movieRepo, ratingRepo)

	// An empty body must be rejected, not recorded as a 0.0 rating
	_, err := svc.SubmitRating(context.Background(), uuid.New().String(), uuid.New(), &request.RatingRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	ratingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitRatingZeroValue(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	ratingRepo := new(MockRatingRepository)
	svc := newRatingService(movieRepo, ratingRepo)

	movieID := uuid.New()
	movie := &entity.Movie{Base: entity.Base{ID: movieID}}

	movieRepo.On("FindByID", mock.Anything, movieID).Return(movie, nil)
	// An explicit 0 is a valid rating, distinct from an omitted one
	ratingRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.Rating) bool {
		return r.Value == 0
	})).Return(nil)

	resp, err := svc.SubmitRating(context.Background(), movieID.String(), uuid.New(), ratingRequest(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Rating)

	ratingRepo.AssertExpectations(t)
}

func TestGetAverageRating(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	ratingRepo := new(MockRatingRepository)
	svc := newRatingService(movieRepo, ratingRepo)

	movieID := uuid.New()
	movie := &entity.Movie{Base: entity.Base{ID: movieID}}

	movieRepo.On("FindByID", mock.Anything, movieID).Return(movie, nil)
	// Mean of ratings [5, 7]
	ratingRepo.On("AverageByMovieID", mock.Anything, movieID).Return(6.0, nil)

	average, err := svc.GetAverageRating(context.Background(), movieID.String())
	require.NoError(t, err)
	assert.Equal(t, 6.0, average)
}

func TestGetAverageRatingNoRatings(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	ratingRepo := new(MockRatingRepository)
	svc := newRatingService(movieRepo, ratingRepo)

	movieID := uuid.New()
	movie := &entity.Movie{Base: entity.Base{ID: movieID}}

	movieRepo.On("FindByID", mock.Anything, movieID).Return(movie, nil)
	ratingRepo.On("AverageByMovieID", mock.Anything, movieID).Return(0.0, nil)

	// Zero ratings means average 0, not an error
	average, err := svc.GetAverageRating(context.Background(), movieID.String())
	require.NoError(t, err)
	assert.Equal(t, 0.0, average)
}

func TestGetAverageRatingMovieNotFound(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	ratingRepo := new(MockRatingRepository)
	svc := newRatingService(movieRepo, ratingRepo)

	movieID := uuid.New()
	movieRepo.On("FindByID", mock.Anything, movieID).Return(nil, nil)

	_, err := svc.GetAverageRating(context.Background(), movieID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
