package middleware

import (
	"net/http"

	"channa-relay/internal/transport/httpdto"
	"channa-relay/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors handlers attached with c.Error when nothing
// has been written yet.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		err := last.Err
		if l != nil {
			if last.IsType(gin.ErrorTypeBind) {
				l.Warnf("invalid request body: %s", err.Error())
			} else {
				l.Errorf("request error: %s", err.Error())
			}
		}
		if c.Writer.Written() {
			return
		}
		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		c.JSON(status, httpdto.NewErrorResponse(err.Error()))
	}
}

// NotFound answers unknown routes the same way as other errors.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, httpdto.NewErrorResponse("Not Found"))
}

// MethodNotAllowed answers known routes hit with the wrong method.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, httpdto.NewErrorResponse("Method Not Allowed"))
}
