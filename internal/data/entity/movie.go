package entity

import (
	"time"

	"github.com/google/uuid"
)

type Movie struct {
	Base
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Duration    int       `db:"duration"`
	ReleaseDate time.Time `db:"release_date"`
	UserID      uuid.UUID `db:"user_id"`
}
