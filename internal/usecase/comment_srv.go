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

type CommentService interface {
	CreateComment(ctx context.Context, movieID string, userID uuid.UUID, req *request.CommentRequest) (*response.CommentResponse, error)
	GetMovieComments(ctx context.Context, movieID string, page *request.PaginatedRequest) ([]response.CommentResponse, error)
	CreateReply(ctx context.Context, commentID string, userID uuid.UUID, req *request.ReplyRequest) (*response.ReplyResponse, error)
	GetCommentReplies(ctx context.Context, commentID string, page *request.PaginatedRequest) ([]response.ReplyResponse, error)
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) CreateComment(ctx context.Context, movieID string, userID uuid.UUID, req *request.CommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create comment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s", movieID)
	}

	// Any authenticated user can comment on any movie
	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		s.log.Error("Failed to check movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("check movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	comment := &entity.Comment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Content: req.Content,
		MovieID: movieUUID,
		UserID:  userID,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("movie_id", movieID),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("movie_id", movieID),
		zap.String("user_id", userID.String()))

	resp := response.CommentToResponse(comment, nil)
	return &resp, nil
}

func (s *commentService) GetMovieComments(ctx context.Context, movieID string, page *request.PaginatedRequest) ([]response.CommentResponse, error) {
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

	comments, err := s.repo.Comment.FindByMovieID(ctx, movieUUID, page.Skip, page.Limit)
	if err != nil {
		s.log.Error("Failed to get comments", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get comments: %w", err)
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

func (s *commentService) CreateReply(ctx context.Context, commentID string, userID uuid.UUID, req *request.ReplyRequest) (*response.ReplyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reply validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	commentUUID, err := uuid.Parse(commentID)
	if err != nil {
		return nil, fmt.Errorf("invalid comment ID format %s", commentID)
	}

	// Replies only nest one level: they attach to a comment, never to
	// another reply
	comment, err := s.repo.Comment.FindByID(ctx, commentUUID)
	if err != nil {
		s.log.Error("Failed to check comment", zap.Error(err), zap.String("comment_id", commentID))
		return nil, fmt.Errorf("check comment: %w", err)
	}
	if comment == nil {
		return nil, fmt.Errorf("comment not found")
	}

	reply := &entity.Reply{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Content:   req.Content,
		CommentID: commentUUID,
		UserID:    userID,
	}

	if err := s.repo.Reply.Create(ctx, reply); err != nil {
		s.log.Error("Failed to create reply",
			zap.Error(err),
			zap.String("comment_id", commentID),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("create reply: %w", err)
	}

	s.log.Info("Reply created",
		zap.String("reply_id", reply.ID.String()),
		zap.String("comment_id", commentID),
		zap.String("user_id", userID.String()))

	resp := response.ReplyToResponse(reply)
	return &resp, nil
}

func (s *commentService) GetCommentReplies(ctx context.Context, commentID string, page *request.PaginatedRequest) ([]response.ReplyResponse, error) {
	commentUUID, err := uuid.Parse(commentID)
	if err != nil {
		return nil, fmt.Errorf("invalid comment ID format %s", commentID)
	}

	comment, err := s.repo.Comment.FindByID(ctx, commentUUID)
	if err != nil {
		s.log.Error("Failed to check comment", zap.Error(err), zap.String("comment_id", commentID))
		return nil, fmt.Errorf("check comment: %w", err)
	}
	if comment == nil {
		return nil, fmt.Errorf("comment not found")
	}

	replies, err := s.repo.Reply.FindByCommentID(ctx, commentUUID, page.Skip, page.Limit)
	if err != nil {
		s.log.Error("Failed to get replies", zap.Error(err), zap.String("comment_id", commentID))
		return nil, fmt.Errorf("get replies: %w", err)
	}

	return response.RepliesToResponse(replies), nil
}
