package repository

import (
	"context"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID, skip, limit int) ([]*entity.Comment, error)
	// FindAllByMovieID loads every comment of a movie, for embedding
	// comments in the movie detail response.
	FindAllByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Comment, error)
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (id, content, movie_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		comment.ID,
		comment.Content,
		comment.MovieID,
		comment.UserID,
		comment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("movie_id", comment.MovieID.String()),
			zap.String("user_id", comment.UserID.String()),
		)
		return fmt.Errorf("create comment for movie %s: %w", comment.MovieID.String(), err)
	}

	return nil
}

func (r *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	query := `
		SELECT id, content, movie_id, user_id, created_at
		FROM comments
		WHERE id = $1
	`

	var comment entity.Comment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.Content,
		&comment.MovieID,
		&comment.UserID,
		&comment.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find comment by ID",
			zap.Error(err),
			zap.String("comment_id", id.String()),
		)
		return nil, fmt.Errorf("find comment by ID %s: %w", id.String(), err)
	}

	return &comment, nil
}

func (r *commentRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID, skip, limit int) ([]*entity.Comment, error) {
	query := `
		SELECT id, content, movie_id, user_id, created_at
		FROM comments
		WHERE movie_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryComments(ctx, query, movieID, limit, skip)
}

func (r *commentRepository) FindAllByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Comment, error) {
	query := `
		SELECT id, content, movie_id, user_id, created_at
		FROM comments
		WHERE movie_id = $1
		ORDER BY created_at DESC
	`

	return r.queryComments(ctx, query, movieID)
}

func (r *commentRepository) queryComments(ctx context.Context, query string, args ...any) ([]*entity.Comment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find comments", zap.Error(err))
		return nil, fmt.Errorf("find comments: %w", err)
	}
	defer rows.Close()

	var comments []*entity.Comment
	for rows.Next() {
		var comment entity.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.Content,
			&comment.MovieID,
			&comment.UserID,
			&comment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}

	return comments, nil
}
