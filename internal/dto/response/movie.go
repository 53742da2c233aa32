package response

import (
	"time"

	"movie-review/internal/data/entity"
)

type MovieResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Duration      int       `json:"duration"`
	ReleaseDate   time.Time `json:"release_date"`
	UserID        string    `json:"user_id"`
	AverageRating float64   `json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
}

type MovieDetailResponse struct {
	MovieResponse
	Comments  []CommentResponse `json:"comments"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Helper converters

func MovieToResponse(movie *entity.Movie, averageRating float64) MovieResponse {
	return MovieResponse{
		ID:            movie.ID.String(),
		Title:         movie.Title,
		Description:   movie.Description,
		Duration:      movie.Duration,
		ReleaseDate:   movie.ReleaseDate,
		UserID:        movie.UserID.String(),
		AverageRating: averageRating,
		CreatedAt:     movie.CreatedAt,
	}
}

func MovieToDetailResponse(movie *entity.Movie, averageRating float64, comments []CommentResponse) MovieDetailResponse {
	if comments == nil {
		comments = []CommentResponse{}
	}

	return MovieDetailResponse{
		MovieResponse: MovieToResponse(movie, averageRating),
		Comments:      comments,
		UpdatedAt:     movie.UpdatedAt,
	}
}
