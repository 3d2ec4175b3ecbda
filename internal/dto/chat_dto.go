package dto

type SendChatRequest struct {
	UserId  string `json:"userId"`
	Message string `json:"message" validate:"required"`
}

type SendChatResponse struct {
	Reply string `json:"reply"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
