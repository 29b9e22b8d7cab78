package httpdto

// ChatRequest is used for POST /chat
type ChatRequest struct {
	Message *string `json:"message" binding:"required"`
}
