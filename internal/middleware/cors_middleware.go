package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware accepts every origin, method and header with credentials.
// The origin is echoed back because browsers refuse "*" with credentials,
// and a preflight gets its Access-Control-Request-Headers echoed back for
// the same reason.
// TODO: restrict AllowOriginFunc to the deployed frontend origins.
func CORSMiddleware() gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowOriginFunc: func(string) bool { return true },
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	})

	return func(c *gin.Context) {
		requested := c.GetHeader("Access-Control-Request-Headers")
		if c.Request.Method != http.MethodOptions || requested == "" {
			handler(c)
			return
		}

		orig := c.Writer
		c.Writer = &allowHeadersWriter{ResponseWriter: orig, allow: requested}
		defer func() { c.Writer = orig }()
		handler(c)
	}
}

// allowHeadersWriter replaces the wildcard Access-Control-Allow-Headers
// right before the preflight response is committed.
type allowHeadersWriter struct {
	gin.ResponseWriter
	allow string
}

func (w *allowHeadersWriter) WriteHeader(code int) {
	w.Header().Set("Access-Control-Allow-Headers", w.allow)
	w.ResponseWriter.WriteHeader(code)
}

func (w *allowHeadersWriter) WriteHeaderNow() {
	w.Header().Set("Access-Control-Allow-Headers", w.allow)
	w.ResponseWriter.WriteHeaderNow()
}
