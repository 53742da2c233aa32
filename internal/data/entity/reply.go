package entity

import (
	"github.com/google/uuid"
)

// Reply is a one-level nested comment. Replies to replies do not exist.
type Reply struct {
	BaseSimple
	Content   string    `db:"content"`
	CommentID uuid.UUID `db:"comment_id"`
	UserID    uuid.UUID `db:"user_id"`
}
