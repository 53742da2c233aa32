package request

type CommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type ReplyRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}
