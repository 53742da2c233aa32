package response

import (
	"time"

	"movie-review/internal/data/entity"
)

type RatingResponse struct {
	ID        string    `json:"id"`
	Rating    float64   `json:"rating"`
	MovieID   string    `json:"movie_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converter
func RatingToResponse(rating *entity.Rating) RatingResponse {
	return RatingResponse{
		ID:        rating.ID.String(),
		Rating:    rating.Value,
		MovieID:   rating.MovieID.String(),
		UserID:    rating.UserID.String(),
		CreatedAt: rating.CreatedAt,
	}
}
