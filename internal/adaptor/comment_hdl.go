package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// CreateComment handles POST /movies/{id}/create_comment
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	var req request.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	comment, err := h.service.CreateComment(r.Context(), movieID, userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create comment")
		return
	}

	utils.ResponseSuccess(w, "Comment created successfully", comment)
}

// GetMovieComments handles GET /movies/{id}/comments
func (h *CommentHandler) GetMovieComments(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	page := parsePagination(r)

	comments, err := h.service.GetMovieComments(r.Context(), movieID, page)
	if err != nil {
		h.handleServiceError(w, err, "get movie comments")
		return
	}

	utils.ResponseSuccess(w, "Comments retrieved successfully", comments)
}

// CreateReply handles POST /comments/{id}/comments
func (h *CommentHandler) CreateReply(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	commentID := chi.URLParam(r, "id")
	if commentID == "" {
		utils.ResponseBadRequest(w, "Comment ID is required", nil)
		return
	}

	var req request.ReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reply, err := h.service.CreateReply(r.Context(), commentID, userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create reply")
		return
	}

	utils.ResponseSuccess(w, "Reply created successfully", reply)
}

// GetCommentReplies handles GET /comments/{id}/replies
func (h *CommentHandler) GetCommentReplies(w http.ResponseWriter, r *http.Request) {
	commentID := chi.URLParam(r, "id")
	if commentID == "" {
		utils.ResponseBadRequest(w, "Comment ID is required", nil)
		return
	}

	page := parsePagination(r)

	replies, err := h.service.GetCommentReplies(r.Context(), commentID, page)
	if err != nil {
		h.handleServiceError(w, err, "get comment replies")
		return
	}

	utils.ResponseSuccess(w, "Replies retrieved successfully", replies)
}

// handleServiceError maps service errors to HTTP responses
func (h *CommentHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid") && strings.Contains(errMsg, "format"):
		h.log.Warn(operation+" failed - bad ID", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
