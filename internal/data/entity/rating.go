package entity

import (
	"github.com/google/uuid"
)

type Rating struct {
	BaseSimple
	Value   float64   `db:"value"`
	MovieID uuid.UUID `db:"movie_id"`
	UserID  uuid.UUID `db:"user_id"`
}
