package handler

import (
	"net/http"

	"channa-relay/internal/services"
	"channa-relay/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat streams the completion as plain text. Provider failures are part of
// the body, so once streaming starts the status is always 200.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req httpdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()

	// a write error means the client left; the service has logged it
	_ = h.service.Stream(c.Request.Context(), *req.Message, c.Writer)
}
