package request

type MovieRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required"`
	Duration    int    `json:"duration" validate:"required,min=0,max=999"`
}

type MovieUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Duration    *int    `json:"duration,omitempty" validate:"omitempty,min=0,max=999"`
}
