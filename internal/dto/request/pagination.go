package request

// PaginatedRequest carries skip/limit query parameters. Limit defaults
// to 10 and has no upper bound.
type PaginatedRequest struct {
	Skip  int `json:"skip" validate:"min=0"`
	Limit int `json:"limit" validate:"min=0"`
}
