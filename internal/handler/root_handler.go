package handler

import (
	"net/http"

	"channa-relay/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

const RootMessage = "Therapy chatbot backend is running."

// Root is the liveness probe.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, httpdto.NewStatusResponse(RootMessage))
}
