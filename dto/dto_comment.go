package dto

type CreateCommentReq struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

type UpdateCommentReq struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

type CreateReplyReq struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

type UpdateReplyReq struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}
