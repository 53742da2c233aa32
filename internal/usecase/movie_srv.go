package usecase

import (
	"context"
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

// scopedNotFound deliberately conflates "absent" and "owned by someone
// else" so the response never leaks whether another user's movie exists.
const scopedNotFound = "movie not found or user is not allowed to access this movie"

type MovieService interface {
	GetMovies(ctx context.Context, page *request.PaginatedRequest) ([]response.MovieDetailResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error)
	CreateMovie(ctx context.Context, userID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, userID uuid.UUID, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string, userID uuid.UUID) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

// GetMovies lists movies with their average rating and comments
// (replies included) embedded per item.
func (s *movieService) GetMovies(ctx context.Context, page *request.PaginatedRequest) ([]response.MovieDetailResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx, page.Skip, page.Limit)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	resp := make([]response.MovieDetailResponse, 0, len(movies))
	for _, movie := range movies {
		average, err := s.repo.Rating.AverageByMovieID(ctx, movie.ID)
		if err != nil {
			s.log.Error("Failed to get average rating",
				zap.Error(err),
				zap.String("movie_id", movie.ID.String()))
			return nil, fmt.Errorf("get average rating: %w", err)
		}

		comments, err := s.buildCommentResponses(ctx, movie.ID)
		if err != nil {
			return nil, err
		}

		resp = append(resp, response.MovieToDetailResponse(movie, average, comments))
	}

	return resp, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s", movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	average, err := s.repo.Rating.AverageByMovieID(ctx, movieUUID)
	if err != nil {
		s.log.Error("Failed to get average rating", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get average rating: %w", err)
	}

	comments, err := s.buildCommentResponses(ctx, movieUUID)
	if err != nil {
		return nil, err
	}

	resp := response.MovieToDetailResponse(movie, average, comments)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, userID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		ReleaseDate: now,
		UserID:      userID,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("title", movie.Title))

	resp := response.MovieToResponse(movie, 0)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, userID uuid.UUID, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie, err := s.findOwnedMovie(ctx, movieID, userID)
	if err != nil {
		return nil, err
	}

	// Apply only the fields present in the payload
	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.Duration != nil {
		movie.Duration = *req.Duration
	}
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movieID))
		return nil, fmt.Errorf("update movie: %w", err)
	}

	average, err := s.repo.Rating.AverageByMovieID(ctx, movie.ID)
	if err != nil {
		s.log.Error("Failed to get average rating after update",
			zap.Error(err),
			zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get average rating: %w", err)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("user_id", userID.String()))

	resp := response.MovieToResponse(movie, average)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string, userID uuid.UUID) error {
	movie, err := s.findOwnedMovie(ctx, movieID, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Movie.DeleteWithRatings(ctx, movie.ID); err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", movieID))
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted",
		zap.String("movie_id", movieID),
		zap.String("user_id", userID.String()))

	return nil
}

// ==================== HELPER METHODS ====================

func (s *movieService) findOwnedMovie(ctx context.Context, movieID string, userID uuid.UUID) (*entity.Movie, error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s", movieID)
	}

	movie, err := s.repo.Movie.FindByIDAndOwner(ctx, movieUUID, userID)
	if err != nil {
		s.log.Error("Failed to find owned movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		s.log.Warn("Movie not found or access denied",
			zap.String("movie_id", movieID),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("%s", scopedNotFound)
	}

	return movie, nil
}

func (s *movieService) buildCommentResponses(ctx context.Context, movieID uuid.UUID) ([]response.CommentResponse, error) {
	comments, err := s.repo.Comment.FindAllByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie comments",
			zap.Error(err),
			zap.String("movie_id", movieID.String()))
		return nil, fmt.Errorf("get movie comments: %w", err)
	}

	resp := make([]response.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		replies, err := s.repo.Reply.FindAllByCommentID(ctx, comment.ID)
		if err != nil {
			s.log.Error("Failed to get comment replies",
				zap.Error(err),
				zap.String("comment_id", comment.ID.String()))
			return nil, fmt.Errorf("get comment replies: %w", err)
		}
		resp = append(resp, response.CommentToResponse(comment, response.RepliesToResponse(replies)))
	}

	return resp, nil
}
