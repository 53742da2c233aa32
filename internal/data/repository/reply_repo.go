package repository

import (
	"context"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReplyRepository interface {
	Create(ctx context.Context, reply *entity.Reply) error
	FindByCommentID(ctx context.Context, commentID uuid.UUID, skip, limit int) ([]*entity.Reply, error)
	// FindAllByCommentID loads every reply of a comment, for embedding
	// replies under their parent comment in responses.
	FindAllByCommentID(ctx context.Context, commentID uuid.UUID) ([]*entity.Reply, error)
}

type replyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReplyRepository(db database.PgxIface, log *zap.Logger) ReplyRepository {
	return &replyRepository{
		db:  db,
		log: log.With(zap.String("repository", "reply")),
	}
}

func (r *replyRepository) Create(ctx context.Context, reply *entity.Reply) error {
	query := `
		INSERT INTO replies (id, content, comment_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		reply.ID,
		reply.Content,
		reply.CommentID,
		reply.UserID,
		reply.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reply",
			zap.Error(err),
			zap.String("comment_id", reply.CommentID.String()),
			zap.String("user_id", reply.UserID.String()),
		)
		return fmt.Errorf("create reply for comment %s: %w", reply.CommentID.String(), err)
	}

	return nil
}

func (r *replyRepository) FindByCommentID(ctx context.Context, commentID uuid.UUID, skip, limit int) ([]*entity.Reply, error) {
	query := `
		SELECT id, content, comment_id, user_id, created_at
		FROM replies
		WHERE comment_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`

	return r.queryReplies(ctx, query, commentID, limit, skip)
}

func (r *replyRepository) FindAllByCommentID(ctx context.Context, commentID uuid.UUID) ([]*entity.Reply, error) {
	query := `
		SELECT id, content, comment_id, user_id, created_at
		FROM replies
		WHERE comment_id = $1
		ORDER BY created_at ASC
	`

	return r.queryReplies(ctx, query, commentID)
}

func (r *replyRepository) queryReplies(ctx context.Context, query string, args ...any) ([]*entity.Reply, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find replies", zap.Error(err))
		return nil, fmt.Errorf("find replies: %w", err)
	}
	defer rows.Close()

	var replies []*entity.Reply
	for rows.Next() {
		var reply entity.Reply
		err := rows.Scan(
			&reply.ID,
			&reply.Content,
			&reply.CommentID,
			&reply.UserID,
			&reply.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan reply row", zap.Error(err))
			return nil, fmt.Errorf("scan reply row: %w", err)
		}
		replies = append(replies, &reply)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate reply rows: %w", err)
	}

	return replies, nil
}
