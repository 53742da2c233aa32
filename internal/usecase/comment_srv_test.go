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

func newCommentService(movieRepo *MockMovieRepository, commentRepo *MockCommentRepository, replyRepo *MockReplyRepository) CommentService {
	repo := &repository.Repository{
		Movie:   movieRepo,
		Comment: commentRepo,
		Reply:   replyRepo,
	}
	return NewCommentService(repo, zap.NewNop())
}

func TestCreateComment(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	commentRepo := new(MockCommentRepository)
	svc := newCommentService(movieRepo, commentRepo, new(MockReplyRepository))

	movieID := uuid.New()
	userID := uuid.New()
	movie := &entity.Movie{Base: entity.Base{ID: movieID}, Title: "T"}

	movieRepo.On("FindByID", mock.Anything, movieID).Return(movie, nil)
	commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Comment) bool {
		return c.Content == "great movie" && c.MovieID == movieID && c.UserID == userID
	})).Return(nil)

	resp, err := svc.CreateComment(context.Background(), movieID.String(), userID, &request.CommentRequest{Content: "great movie"})
	require.NoError(t, err)

	assert.Equal(t, "great movie", resp.Content)
	assert.Equal(t, movieID.String(), resp.MovieID)

	commentRepo.AssertExpectations(t)
}

func TestCreateCommentMovieNotFound(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	commentRepo := new(MockCommentRepository)
	svc := newCommentService(movieRepo, commentRepo, new(MockReplyRepository))

	movieID := uuid.New()
	movieRepo.On("FindByID", mock.Anything, movieID).Return(nil, nil)

	_, err := svc.CreateComment(context.Background(), movieID.String(), uuid.New(), &request.CommentRequest{Content: "great movie"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCommentEmptyContent(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	svc := newCommentService(movieRepo, new(MockCommentRepository), new(MockReplyRepository))

	_, err := svc.CreateComment(context.Background(), uuid.New().String(), uuid.New(), &request.CommentRequest{Content: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	movieRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestGetMovieComments(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	commentRepo := new(MockCommentRepository)
	replyRepo := new(MockReplyRepository)
	svc := newCommentService(movieRepo, commentRepo, replyRepo)

	movieID := uuid.New()
	commentID := uuid.New()
	movie := &entity.Movie{Base: entity.Base{ID: movieID}}
	comment := &entity.Comment{BaseSimple: entity.BaseSimple{ID: commentID}, Content: "nice", MovieID: movieID}
	reply := &entity.Reply{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Content: "agreed", CommentID: commentID}

	movieRepo.On("FindByID", mock.Anything, movieID).Return(movie, nil)
	commentRepo.On("FindByMovieID", mock.Anything, movieID, 0, 10).Return([]*entity.Comment{comment}, nil)
	replyRepo.On("FindAllByCommentID", mock.Anything, commentID).Return([]*entity.Reply{reply}, nil)

	resp, err := svc.GetMovieComments(context.Background(), movieID.String(), &request.PaginatedRequest{Skip: 0, Limit: 10})
	require.NoError(t, err)

	require.Len(t, resp, 1)
	assert.Equal(t, "nice", resp[0].Content)
	require.Len(t, resp[0].Replies, 1)
	assert.Equal(t, "agreed", resp[0].Replies[0].Content)
}

func TestGetMovieCommentsMovieNotFound(t *testing.T) {
	movieRepo := new(MockMovieRepository)
	svc := newCommentService(movieRepo, new(MockCommentRepository), new(MockReplyRepository))

	movieID := uuid.New()
	movieRepo.On("FindByID", mock.Anything, movieID).Return(nil, nil)

	_, err := svc.GetMovieComments(context.Background(), movieID.String(), &request.PaginatedRequest{Limit: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateReply(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	replyRepo := new(MockReplyRepository)
	svc := newCommentService(new(MockMovieRepository), commentRepo, replyRepo)

	commentID := uuid.New()
	userID := uuid.New()
	comment := &entity.Comment{BaseSimple: entity.BaseSimple{ID: commentID}, Content: "nice"}

	commentRepo.On("FindByID", mock.Anything, commentID).Return(comment, nil)
	replyRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.Reply) bool {
		return r.Content == "same here" && r.CommentID == commentID && r.UserID == userID
	})).Return(nil)

	resp, err := svc.CreateReply(context.Background(), commentID.String(), userID, &request.ReplyRequest{Content: "same here"})
	require.NoError(t, err)

	assert.Equal(t, "same here", resp.Content)
	assert.Equal(t, commentID.String(), resp.CommentID)

	replyRepo.AssertExpectations(t)
}

func TestCreateReplyCommentNotFound(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	replyRepo := new(MockReplyRepository)
	svc := newCommentService(new(MockMovieRepository), commentRepo, replyRepo)

	commentID := uuid.New()
	commentRepo.On("FindByID", mock.Anything, commentID).Return(nil, nil)

	_, err := svc.CreateReply(context.Background(), commentID.String(), uuid.New(), &request.ReplyRequest{Content: "same here"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "comment not found")

	replyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetCommentReplies(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	replyRepo := new(MockReplyRepository)
	svc := newCommentService(new(MockMovieRepository), commentRepo, replyRepo)

	commentID := uuid.New()
	comment := &entity.Comment{BaseSimple: entity.BaseSimple{ID: commentID}}
	replies := []*entity.Reply{
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Content: "first", CommentID: commentID},
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Content: "second", CommentID: commentID},
	}

	commentRepo.On("FindByID", mock.Anything, commentID).Return(comment, nil)
	replyRepo.On("FindByCommentID", mock.Anything, commentID, 0, 10).Return(replies, nil)

	resp, err := svc.GetCommentReplies(context.Background(), commentID.String(), &request.PaginatedRequest{Skip: 0, Limit: 10})
	require.NoError(t, err)

	require.Len(t, resp, 2)
	assert.Equal(t, "first", resp[0].Content)
}
