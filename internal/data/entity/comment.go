package entity

import (
	"github.com/google/uuid"
)

type Comment struct {
	BaseSimple
	Content string    `db:"content"`
	MovieID uuid.UUID `db:"movie_id"`
	UserID  uuid.UUID `db:"user_id"`
}
