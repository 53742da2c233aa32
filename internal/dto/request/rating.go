package request

// Value range is validated here at the boundary, before the rating
// service is involved. A pointer so an omitted rating is a validation
// error instead of a silent 0.
type RatingRequest struct {
	Rating *float64 `json:"rating" validate:"required,min=0,max=10"`
}
