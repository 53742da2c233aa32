package response

import (
	"time"

	"movie-review/internal/data/entity"
)

type CommentResponse struct {
	ID        string          `json:"id"`
	Content   string          `json:"content"`
	MovieID   string          `json:"movie_id"`
	UserID    string          `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
	Replies   []ReplyResponse `json:"replies"`
}

type ReplyResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CommentID string    `json:"comment_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converters

func CommentToResponse(comment *entity.Comment, replies []ReplyResponse) CommentResponse {
	if replies == nil {
		replies = []ReplyResponse{}
	}

	return CommentResponse{
		ID:        comment.ID.String(),
		Content:   comment.Content,
		MovieID:   comment.MovieID.String(),
		UserID:    comment.UserID.String(),
		CreatedAt: comment.CreatedAt,
		Replies:   replies,
	}
}

func ReplyToResponse(reply *entity.Reply) ReplyResponse {
	return ReplyResponse{
		ID:        reply.ID.String(),
		Content:   reply.Content,
		CommentID: reply.CommentID.String(),
		UserID:    reply.UserID.String(),
		CreatedAt: reply.CreatedAt,
	}
}

func RepliesToResponse(replies []*entity.Reply) []ReplyResponse {
	resp := make([]ReplyResponse, 0, len(replies))
	for _, reply := range replies {
		resp = append(resp, ReplyToResponse(reply))
	}
	return resp
}
